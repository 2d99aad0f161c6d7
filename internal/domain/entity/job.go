package entity

import "time"

// Job posting statuses tracked through the application funnel.
const (
	JobStatusSaved     = "saved"
	JobStatusApplied   = "applied"
	JobStatusInterview = "interview"
	JobStatusOffer     = "offer"
	JobStatusRejected  = "rejected"
)

type JobPosting struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	URL         string     `json:"url"`
	SalaryRange string     `json:"salary_range"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type JobPostingPatch struct {
	Title       *string
	Company     *string
	Location    *string
	URL         *string
	SalaryRange *string
	Status      *string
	Deadline    *time.Time
	Notes       *string
}
