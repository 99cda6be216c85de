package models

// ProfileBundle is the aggregated payload behind the profile, notifications,
// courses and messages dashboards. Every slice may be empty; pages fall back
// to empty defaults rather than failing.
type ProfileBundle struct {
	User             *UserSummary     `json:"user,omitempty"`
	Profile          *ProfileInfo     `json:"profile,omitempty"`
	Stats            []ProfileStat    `json:"stats,omitempty"`
	ActiveTeams      []ActiveTeam     `json:"activeTeams,omitempty"`
	SpotlightProject []Spotlight      `json:"spotlightProjects,omitempty"`
	Skills           *ProfileSkills   `json:"skills,omitempty"`
	RecentActivity   []ActivityItem   `json:"recentActivity,omitempty"`
	LearningTargets  []LearningTarget `json:"learningTargets,omitempty"`
}

type ProfileInfo struct {
	Name         string `json:"name,omitempty"`
	Title        string `json:"title,omitempty"`
	Major        string `json:"major,omitempty"`
	Graduation   string `json:"graduation,omitempty"`
	Location     string `json:"location,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Availability string `json:"availability,omitempty"`
}

type ProfileStat struct {
	Label string `json:"label"`
	Value any    `json:"value"`
	Trend string `json:"trend,omitempty"`
}

type ActiveTeam struct {
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Focus    string `json:"focus,omitempty"`
	Progress int    `json:"progress"`
	Spots    int    `json:"spots"`
	TeamID   *int64 `json:"team_id,omitempty"`
	CourseID string `json:"course_id,omitempty"`
}

type Spotlight struct {
	Course  string `json:"course,omitempty"`
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
}

type ProfileSkills struct {
	Core  []string `json:"core,omitempty"`
	Tools []string `json:"tools,omitempty"`
}

type ActivityItem struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Time   string `json:"time,omitempty"`
}

type LearningTarget struct {
	Topic  string `json:"topic"`
	Detail string `json:"detail,omitempty"`
}

// ProfileUpdate carries the mutable profile fields; nil means "leave unchanged".
type ProfileUpdate struct {
	DisplayName *string `json:"display_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Major       *string `json:"major,omitempty"`
	Grade       *string `json:"grade,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}
