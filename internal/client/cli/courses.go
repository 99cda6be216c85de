package cli

import (
	"context"
	"fmt"

	"github.com/teamup-uiuc/teamup-cli/internal/client/controllers"
)

// Courses shows the user's courses plus the popular-course tags.
func (a *App) Courses(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	page := controllers.NewCourses(a.api, a.log, a.user)
	page.Load(ctx, "")

	printlnFn(fmt.Sprintf("Your courses (%d):", len(page.Courses())))
	for _, c := range page.Courses() {
		printlnFn(fmt.Sprintf("  %s %s  %s", c.Subject, c.Number, c.Title))
	}
	if len(page.Courses()) == 0 {
		printlnFn("  (none)")
	}

	if popular := page.Popular(); len(popular) > 0 {
		printlnFn("Popular right now:")
		for _, c := range popular {
			printlnFn(fmt.Sprintf("  %s %s  (%d posts)", c.Subject, c.Number, c.PostCount))
		}
	}
	return nil
}
