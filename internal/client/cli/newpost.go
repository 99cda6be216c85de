package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
)

// NewPost creates a recruiting post: term, course, optional section, team
// name, target size, title and body. Everything the backend requires is
// validated client-side before the request goes out; sections for the
// chosen course are listed to help pick one.
func (a *App) NewPost(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	termID, err := getSimpleText(a.reader, "Enter term id (e.g. 2024-fall)", os.Stdout)
	if err != nil {
		return err
	}
	if termID == "" {
		printlnFn("Please select a term.")
		return nil
	}

	courseID, err := getSimpleText(a.reader, "Enter course id", os.Stdout)
	if err != nil {
		return err
	}
	if courseID == "" {
		printlnFn("Please select a course.")
		return nil
	}

	// Section is optional; a failed lookup just skips the listing.
	if sections, err := a.api.CourseSections(ctx, courseID); err == nil && len(sections) > 0 {
		printlnFn("Sections:")
		for _, s := range sections {
			printlnFn(fmt.Sprintf("  %s  %s  %s", s.CRN, orDash(s.Instructor), orDash(s.MeetingTime)))
		}
	}
	sectionID, err := getSimpleText(a.reader, "Enter section CRN (optional)", os.Stdout)
	if err != nil {
		return err
	}

	teamName, err := getSimpleText(a.reader, "Enter team name", os.Stdout)
	if err != nil {
		return err
	}
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		printlnFn("Please enter a team name.")
		return nil
	}
	if len(teamName) > 128 {
		printlnFn("Team name cannot exceed 128 characters.")
		return nil
	}

	sizeText, err := getSimpleText(a.reader, "Enter target team size (1-10)", os.Stdout)
	if err != nil {
		return err
	}
	targetSize, err := strconv.Atoi(strings.TrimSpace(sizeText))
	if err != nil || targetSize < 1 || targetSize > 10 {
		printlnFn("Team size must be between 1 and 10.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		printlnFn("Please enter a title.")
		return nil
	}

	content, err := getMultiline(a.reader, "Describe what you are looking for", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		printlnFn("Please enter post content.")
		return nil
	}

	post, err := a.api.CreatePost(ctx, models.PostCreate{
		UserID:     a.user.UserID,
		TermID:     termID,
		CourseID:   courseID,
		SectionID:  sectionID,
		TeamName:   teamName,
		TargetSize: targetSize,
		Title:      strings.TrimSpace(title),
		Content:    content,
	})
	if err != nil {
		printlnFn("Failed to create post:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Post #%d created.", post.PostID))
	return nil
}

// MyPosts lists the posts the user has written or commented on.
func (a *App) MyPosts(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	posts, err := a.api.UserPosts(ctx, a.user.UserID, 0)
	if err != nil {
		printlnFn("Failed to load your posts:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Your posts (%d):", len(posts)))
	for _, p := range posts {
		printlnFn(fmt.Sprintf("  #%d  %s  (%s %s)", p.PostID, p.Title, p.CourseSubject, p.CourseNumber))
	}
	if len(posts) == 0 {
		printlnFn("  (none yet)")
	}
	return nil
}
