package api

import (
	"context"
	"fmt"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
)

// UserTeams lists the teams a user has joined.
func (c *Client) UserTeams(ctx context.Context, userID int64) ([]models.Team, error) {
	var teams []models.Team
	if err := c.get(ctx, fmt.Sprintf("/users/%d/teams", userID), nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Team fetches one team with its member list.
func (c *Client) Team(ctx context.Context, teamID int64) (*models.Team, error) {
	var team models.Team
	if err := c.get(ctx, fmt.Sprintf("/teams/%d", teamID), nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}
