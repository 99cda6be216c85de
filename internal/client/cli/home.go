package cli

import (
	"context"
	"fmt"

	"github.com/teamup-uiuc/teamup-cli/internal/client/controllers"
)

// Home shows the public entry page: popular posts plus the known terms.
// No session required; this page is reachable signed out.
func (a *App) Home(ctx context.Context) error {
	page := controllers.NewEntry(a.api, a.log)
	page.Load(ctx, "")

	if msg := page.Err(); msg != "" {
		printlnFn(msg)
		return nil
	}

	printlnFn("Popular posts:")
	for _, p := range page.Posts() {
		printlnFn(fmt.Sprintf("  #%d  %s  (%s %s)", p.PostID, p.Title, p.CourseSubject, p.CourseNumber))
	}
	if len(page.Posts()) == 0 {
		printlnFn("  (none yet)")
	}

	if terms := page.Terms(); len(terms) > 0 {
		printlnFn("Terms:")
		for _, t := range terms {
			printlnFn(fmt.Sprintf("  %s  %s", t.TermID, t.Name))
		}
	}
	return nil
}
