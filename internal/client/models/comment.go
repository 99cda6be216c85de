package models

// Comment on a post, owned by its author; the backend enforces that only
// the owning user may edit or delete it.
type Comment struct {
	CommentID  int64  `json:"comment_id"`
	PostID     int64  `json:"post_id"`
	UserID     int64  `json:"user_id"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// CommentCreate is the request body for creating a comment.
type CommentCreate struct {
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
}
