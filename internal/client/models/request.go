package models

// Join request statuses. The state machine is one-way and server-driven;
// the client only ever observes transitions through re-fetch.
const (
	RequestStatusPending   = "pending"
	RequestStatusAccepted  = "accepted"
	RequestStatusRejected  = "rejected"
	RequestStatusWithdrawn = "withdrawn"
	RequestStatusExpired   = "expired"
)

// JoinRequest is a user's request to join a recruiting post's team.
// List endpoints join in team/course/sender context for display.
type JoinRequest struct {
	RequestID    int64  `json:"request_id"`
	PostID       int64  `json:"post_id"`
	FromUserID   int64  `json:"from_user_id"`
	ToTeamID     *int64 `json:"to_team_id,omitempty"`
	Message      string `json:"message"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at,omitempty"`
	TeamName     string `json:"team_name,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Number       string `json:"number,omitempty"`
	CourseTitle  string `json:"course_title,omitempty"`
	PostTitle    string `json:"post_title,omitempty"`
	PostAuthorID int64  `json:"post_author_id,omitempty"`
	SenderName   string `json:"sender_name,omitempty"`
	SenderNetID  string `json:"sender_netid,omitempty"`
}

// JoinRequestCreate is the request body for sending a join request. The
// sender travels as from_user_id; the backend attributes the request to a
// default user when the field is absent, so it is never omitted.
type JoinRequestCreate struct {
	PostID     int64  `json:"post_id"`
	FromUserID int64  `json:"from_user_id"`
	Message    string `json:"message"`
}
