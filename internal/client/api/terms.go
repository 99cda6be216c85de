package api

import (
	"context"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
)

// ListTerms fetches the academic terms, newest first.
func (c *Client) ListTerms(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term
	if err := c.get(ctx, "/terms", nil, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}
