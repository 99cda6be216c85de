package models

// TeamMember is one row of a team's member list, with user context joined in.
type TeamMember struct {
	UserID      int64    `json:"user_id"`
	Role        string   `json:"role,omitempty"`
	JoinedAt    string   `json:"joined_at,omitempty"`
	DisplayName string   `json:"display_name,omitempty"`
	NetID       string   `json:"netid,omitempty"`
	Email       string   `json:"email,omitempty"`
	AvatarURL   *string  `json:"avatar_url,omitempty"`
	Major       string   `json:"major,omitempty"`
	Grade       string   `json:"grade,omitempty"`
	Score       *float64 `json:"score,omitempty"`
}

// Team membership changes are server-driven side effects of accepted join
// requests; the client never mutates a team directly.
type Team struct {
	TeamID       int64        `json:"team_id"`
	TeamName     string       `json:"team_name"`
	TargetSize   int          `json:"target_size"`
	CurrentSize  int          `json:"current_size"`
	MemberCount  int          `json:"member_count,omitempty"`
	Status       string       `json:"status,omitempty"`
	CourseID     string       `json:"course_id,omitempty"`
	SectionID    string       `json:"section_id,omitempty"`
	Subject      string       `json:"subject,omitempty"`
	Number       string       `json:"number,omitempty"`
	CourseTitle  string       `json:"course_title,omitempty"`
	SectionCode  string       `json:"section_code,omitempty"`
	Instructor   string       `json:"instructor,omitempty"`
	MeetingTime  string       `json:"meeting_time,omitempty"`
	Location     string       `json:"location,omitempty"`
	DeliveryMode string       `json:"delivery_mode,omitempty"`
	Role         string       `json:"role,omitempty"`
	Members      []TeamMember `json:"members,omitempty"`
}
