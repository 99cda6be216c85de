package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/teamup-uiuc/teamup-cli/internal/client/controllers"
)

// postController builds a post-detail controller carrying the current
// identity, nil when browsing signed out.
func (a *App) postController() *controllers.Post {
	return controllers.NewPost(a.api, a.log, a.user)
}

// ShowPost shows a post with its comments. Public; the signed-in identity
// only changes which actions are offered.
func (a *App) ShowPost(ctx context.Context, arg string) error {
	postID, err := parseID(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	page := a.postController()
	page.Load(ctx, postID)

	if msg := page.Err(); msg != "" {
		printlnFn(msg)
		return nil
	}

	p := page.Current()
	printlnFn(fmt.Sprintf("#%d  %s", p.PostID, p.Title))
	printlnFn(fmt.Sprintf("%s %s  %s  by %s", p.CourseSubject, p.CourseNumber, orDash(p.CourseTitle), orDash(p.AuthorName)))
	printlnFn(p.Content)
	if len(p.Skills) > 0 {
		printlnFn("Skills:", fmt.Sprintf("%v", p.Skills))
	}

	printlnFn(fmt.Sprintf("Comments (%d):", len(page.Comments())))
	for _, c := range page.Comments() {
		printlnFn(fmt.Sprintf("  [%d] %s: %s", c.CommentID, orDash(c.AuthorName), c.Content))
	}
	return nil
}

// Join sends a join request for a post, prompting for the message. The
// session is re-validated before the request goes out.
func (a *App) Join(ctx context.Context, arg string) error {
	postID, err := parseID(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	page := a.postController()
	page.Load(ctx, postID)
	if msg := page.Err(); msg != "" {
		printlnFn(msg)
		return nil
	}

	message, err := getMultiline(a.reader, "Enter a message for the author", os.Stdout)
	if err != nil {
		return err
	}

	if err := page.SendJoinRequest(ctx, message); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Request sent!")
	return nil
}

// Comment adds a comment to a post. The session is re-validated first.
func (a *App) Comment(ctx context.Context, arg string) error {
	postID, err := parseID(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	page := a.postController()
	page.Load(ctx, postID)
	if msg := page.Err(); msg != "" {
		printlnFn(msg)
		return nil
	}

	content, err := getSimpleText(a.reader, "Enter your comment", os.Stdout)
	if err != nil {
		return err
	}

	if err := page.AddComment(ctx, content); err != nil {
		printlnFn(page.CommentErr())
		return err
	}
	printlnFn("Comment posted.")
	return nil
}
