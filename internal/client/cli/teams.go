package cli

import (
	"context"
	"fmt"

	"github.com/teamup-uiuc/teamup-cli/internal/client/controllers"
)

// Teams lists the user's teams.
func (a *App) Teams(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	page := controllers.NewTeams(a.api, a.log, a.user)
	page.Load(ctx)

	if msg := page.Err(); msg != "" {
		printlnFn(msg)
		return nil
	}

	printlnFn(fmt.Sprintf("Your teams (%d):", len(page.Teams())))
	for _, t := range page.Teams() {
		printlnFn(fmt.Sprintf("  [%d] %s  %s %s  (%d/%d)", t.TeamID, t.TeamName, t.Subject, t.Number, t.CurrentSize, t.TargetSize))
	}
	if len(page.Teams()) == 0 {
		printlnFn("  (none yet)")
	}
	return nil
}

// ShowTeam shows one team with its member list.
func (a *App) ShowTeam(ctx context.Context, arg string) error {
	teamID, err := parseID(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	page := controllers.NewTeams(a.api, a.log, a.user)
	if err := page.Select(ctx, teamID); err != nil {
		printlnFn("Failed to load team:", err.Error())
		return err
	}

	t := page.Selected()
	printlnFn(fmt.Sprintf("%s  %s %s  %s", t.TeamName, t.Subject, t.Number, orDash(t.CourseTitle)))
	printlnFn("Members:")
	for _, m := range t.Members {
		printlnFn(fmt.Sprintf("  %s (%s)  %s", orDash(m.DisplayName), orDash(m.NetID), orDash(m.Role)))
	}
	return nil
}
