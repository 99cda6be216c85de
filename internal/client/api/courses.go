package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
)

// SearchCourses searches courses by free-text query within a term. The
// result cap defaults to 50.
func (c *Client) SearchCourses(ctx context.Context, termID, query string, limit int) ([]models.Course, error) {
	if limit <= 0 {
		limit = 50
	}

	q := url.Values{}
	if termID != "" {
		q.Set("term_id", termID)
	}
	if query != "" {
		q.Set("q", query)
	}
	q.Set("limit", strconv.Itoa(limit))

	var courses []models.Course
	if err := c.get(ctx, "/courses/search", q, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// PopularCourses fetches the most-posted-in courses of a term. The result
// cap defaults to 5.
func (c *Client) PopularCourses(ctx context.Context, termID string, limit int) ([]models.Course, error) {
	if limit <= 0 {
		limit = 5
	}

	q := url.Values{}
	if termID != "" {
		q.Set("term_id", termID)
	}
	q.Set("limit", strconv.Itoa(limit))

	var courses []models.Course
	if err := c.get(ctx, "/courses/popular", q, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CourseSections fetches the sections of a course.
func (c *Client) CourseSections(ctx context.Context, courseID string) ([]models.Section, error) {
	var sections []models.Section
	if err := c.get(ctx, fmt.Sprintf("/courses/%s/sections", url.PathEscape(courseID)), nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// UserCourses fetches the courses a user participates in.
func (c *Client) UserCourses(ctx context.Context, userID int64) ([]models.Course, error) {
	var courses []models.Course
	if err := c.get(ctx, fmt.Sprintf("/users/%d/courses", userID), nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
