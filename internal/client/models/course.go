package models

// Term is an academic term used to scope course and post queries.
// Read-only reference data.
type Term struct {
	TermID    string `json:"term_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Course is read-only reference data scoped by term.
type Course struct {
	CourseID   string `json:"course_id"`
	TermID     string `json:"term_id,omitempty"`
	Subject    string `json:"subject"`
	Number     string `json:"number"`
	Title      string `json:"title"`
	Credits    *int   `json:"credits,omitempty"`
	CourseCode string `json:"course_code,omitempty"`
	PostCount  int    `json:"post_count,omitempty"`
}

// Section of a course; identified by CRN.
type Section struct {
	CRN          string `json:"crn"`
	CourseID     string `json:"course_id,omitempty"`
	Instructor   string `json:"instructor,omitempty"`
	MeetingTime  string `json:"meeting_time,omitempty"`
	Location     string `json:"location,omitempty"`
	DeliveryMode string `json:"delivery_mode,omitempty"`
}
