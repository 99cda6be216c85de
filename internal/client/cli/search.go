package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/teamup-uiuc/teamup-cli/internal/client/controllers"
)

// Search runs the interactive course/post search: pick a term, search for a
// course, then list its posts. Public; no session required. The CLI submits
// whole lines so SearchNow is used; the debounce only matters for
// keystroke-driven frontends.
func (a *App) Search(ctx context.Context) error {
	termID, err := getSimpleText(a.reader, "Enter term id (e.g. 2024-fall)", os.Stdout)
	if err != nil {
		return err
	}
	if termID == "" {
		printlnFn("A term is required.")
		return nil
	}

	courses := controllers.NewCourseSearch(a.api, a.log, a.config.SearchDebounce, a.config.MinQueryLength)
	defer courses.Cancel()

	query, err := getSimpleText(a.reader, "Search courses", os.Stdout)
	if err != nil {
		return err
	}

	courses.SearchNow(ctx, termID, query)
	results := courses.Results()
	if len(results) == 0 {
		printlnFn("No matching courses.")
		return nil
	}

	printlnFn("Courses:")
	for _, c := range results {
		printlnFn(fmt.Sprintf("  %s  %s %s  %s", c.CourseID, c.Subject, c.Number, c.Title))
	}

	courseID, err := getSimpleText(a.reader, "Enter a course id to list its posts", os.Stdout)
	if err != nil {
		return err
	}
	if courseID == "" {
		return nil
	}

	posts := controllers.NewPostSearch(a.api, a.log)
	if err := posts.Run(ctx, termID, courseID); err != nil {
		printlnFn("Failed to load posts:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Posts (%d):", len(posts.Posts())))
	for _, p := range posts.Posts() {
		printlnFn(fmt.Sprintf("  #%d  %s", p.PostID, p.Title))
	}
	return nil
}
