package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/teamup-uiuc/teamup-cli/internal/client/controllers"
)

// Profile shows the aggregated profile dashboard.
func (a *App) Profile(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	page := controllers.NewProfile(a.api, a.auth, a.log, a.user)
	page.Load(ctx)

	if msg := page.Err(); msg != "" {
		printlnFn(msg)
	}

	b := page.Bundle()
	if b.Profile != nil {
		printlnFn(b.Profile.Name)
		if b.Profile.Major != "" || b.Profile.Graduation != "" {
			printlnFn(fmt.Sprintf("%s  %s", orDash(b.Profile.Major), orDash(b.Profile.Graduation)))
		}
		if b.Profile.Bio != "" {
			printlnFn(b.Profile.Bio)
		}
	}

	for _, s := range b.Stats {
		printlnFn(fmt.Sprintf("  %s: %v", s.Label, s.Value))
	}

	if b.Skills != nil && len(b.Skills.Core) > 0 {
		printlnFn("Skills:", strings.Join(b.Skills.Core, ", "))
	}

	if len(b.ActiveTeams) > 0 {
		printlnFn("Active teams:")
		for _, t := range b.ActiveTeams {
			printlnFn(fmt.Sprintf("  %s  %s  %d%%", t.Name, orDash(t.Focus), t.Progress))
		}
	}
	return nil
}
