package cli

import (
	"context"
	"fmt"

	"github.com/teamup-uiuc/teamup-cli/internal/client/controllers"
)

// Messages shows the recent-activity feed.
func (a *App) Messages(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	page := controllers.NewMessages(a.api, a.log, a.user)
	page.Load(ctx)

	items := page.Activity()
	if len(items) == 0 {
		printlnFn("No recent activity.")
		return nil
	}
	for _, it := range items {
		printlnFn(fmt.Sprintf("  %s  %s  %s", orDash(it.Time), it.Title, it.Detail))
	}
	return nil
}
