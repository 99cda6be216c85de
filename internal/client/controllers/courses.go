package controllers

import (
	"context"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// Courses drives the courses dashboard: the user's courses plus the
// popular-course tags. Both fetches are wrapped independently so a failed
// secondary fetch degrades to empty instead of failing the page.
type Courses struct {
	api  *api.Client
	log  logging.Logger
	user *models.UserSummary

	courses []models.Course
	popular []models.Course
}

func NewCourses(c *api.Client, log logging.Logger, user *models.UserSummary) *Courses {
	return &Courses{api: c, log: log, user: user}
}

func (c *Courses) Load(ctx context.Context, termID string) {
	courses, err := c.api.UserCourses(ctx, c.user.UserID)
	if err != nil {
		c.log.Warn(ctx, "failed to load user courses", "error", err)
		courses = nil
	}
	c.courses = courses

	popular, err := c.api.PopularCourses(ctx, termID, 0)
	if err != nil {
		c.log.Warn(ctx, "failed to load popular courses", "error", err)
		popular = nil
	}
	c.popular = popular
}

func (c *Courses) Courses() []models.Course { return c.courses }
func (c *Courses) Popular() []models.Course { return c.popular }
