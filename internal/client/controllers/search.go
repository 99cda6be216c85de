package controllers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// CourseSearch coalesces rapid input into one course query and never shows
// a stale result: every outgoing query carries a monotonic sequence number
// and a response is applied only while it is still the latest issued.
//
// Queries shorter than the minimum length clear the suggestions and never
// touch the network. This controller is safe for concurrent use; the
// debounce timer fires on its own goroutine.
type CourseSearch struct {
	api      *api.Client
	log      logging.Logger
	debounce time.Duration
	minLen   int

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	results []models.Course
}

func NewCourseSearch(c *api.Client, log logging.Logger, debounce time.Duration, minLen int) *CourseSearch {
	if minLen <= 0 {
		minLen = 2
	}
	return &CourseSearch{api: c, log: log, debounce: debounce, minLen: minLen}
}

// SetQuery registers a keystroke-level query change. The pending debounce
// timer is reset on every change; only the query standing after the delay
// is sent.
func (s *CourseSearch) SetQuery(ctx context.Context, termID, query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if len([]rune(query)) < s.minLen {
		s.results = nil
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		s.seq++
		mySeq := s.seq
		s.mu.Unlock()
		s.runSearch(ctx, termID, query, mySeq)
	})
}

// SearchNow bypasses the debounce (explicit submit) but still participates
// in the sequence gate.
func (s *CourseSearch) SearchNow(ctx context.Context, termID, query string) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < s.minLen {
		s.mu.Lock()
		s.results = nil
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.seq++
	mySeq := s.seq
	s.mu.Unlock()
	s.runSearch(ctx, termID, query, mySeq)
}

// runSearch performs one query and applies the result only if it is still
// the latest issued.
func (s *CourseSearch) runSearch(ctx context.Context, termID, query string, mySeq uint64) {
	courses, err := s.api.SearchCourses(ctx, termID, query, 0)
	if err != nil {
		s.log.Warn(ctx, "course search failed", "query", query, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if mySeq != s.seq {
		// A newer query was issued while this one was in flight.
		return
	}
	s.results = courses
}

// Results returns the current suggestion list.
func (s *CourseSearch) Results() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Cancel stops any pending debounce timer, e.g. on page exit.
func (s *CourseSearch) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++ // in-flight responses become stale
}

// PostSearch resolves an exact term+course pair to its posts. No debounce:
// it runs on explicit selection, and the fetcher itself fails fast when
// either identifier is missing.
type PostSearch struct {
	api *api.Client
	log logging.Logger

	posts []models.Post
}

func NewPostSearch(c *api.Client, log logging.Logger) *PostSearch {
	return &PostSearch{api: c, log: log}
}

func (s *PostSearch) Run(ctx context.Context, termID, courseID string) error {
	posts, err := s.api.SearchPosts(ctx, termID, courseID, 0)
	if err != nil {
		return err
	}
	s.posts = posts
	return nil
}

func (s *PostSearch) Posts() []models.Post { return s.posts }
