package models

import "encoding/json"

// Post is a course-team recruiting post. Read-mostly; edited or deleted
// only by its author via explicit mutation calls.
type Post struct {
	PostID         int64    `json:"post_id"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	CourseID       string   `json:"course_id,omitempty"`
	CourseTitle    string   `json:"course_title,omitempty"`
	CourseSubject  string   `json:"course_subject,omitempty"`
	CourseNumber   string   `json:"course_number,omitempty"`
	SectionCode    string   `json:"section_code,omitempty"`
	TargetTeamSize *int     `json:"target_team_size,omitempty"`
	AuthorID       int64    `json:"author_id"`
	AuthorName     string   `json:"author_name,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	ViewCount      int      `json:"view_count"`
	RequestCount   int      `json:"request_count"`
	Status         string   `json:"status,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
}

// The backend names the owning user "author_id" on the post-detail endpoint
// but "user_id" on list endpoints. AuthorID is canonical here; decoding
// accepts either spelling, preferring author_id when both are present.
func (p *Post) UnmarshalJSON(data []byte) error {
	type alias Post
	aux := struct {
		*alias
		UserID *int64 `json:"user_id"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.AuthorID == 0 && aux.UserID != nil {
		p.AuthorID = *aux.UserID
	}
	return nil
}

// PostCreate is the request body for creating a post. The backend requires
// the term, a team name and a target size alongside the post text; the
// section is optional and keyed by CRN.
type PostCreate struct {
	UserID     int64  `json:"user_id"`
	TermID     string `json:"term_id"`
	CourseID   string `json:"course_id"`
	SectionID  string `json:"section_id,omitempty"`
	TeamName   string `json:"team_name"`
	TargetSize int    `json:"target_size"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// PostUpdate carries the mutable post fields; nil means "leave unchanged".
type PostUpdate struct {
	Title          *string  `json:"title,omitempty"`
	Content        *string  `json:"content,omitempty"`
	TargetTeamSize *int     `json:"target_team_size,omitempty"`
	Skills         []string `json:"skills,omitempty"`
}
