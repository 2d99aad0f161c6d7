package entity

import "time"

// Profile section records. Every row carries the owning user_id; reads and
// writes are always filtered by it at the query layer.

type Education struct {
	ID           string     `json:"id"`
	UserID       string     `json:"-"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Description  string     `json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
}

type EducationPatch struct {
	School       *string
	Degree       *string
	FieldOfStudy *string
	StartDate    *time.Time
	EndDate      *time.Time
	Description  *string
}

type Employment struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	Company     string     `json:"company"`
	Title       string     `json:"title"`
	Location    string     `json:"location"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
	// DurationMonths is derived from the date range, not stored.
	DurationMonths int       `json:"duration_months"`
	CreatedAt      time.Time `json:"created_at"`
}

type EmploymentPatch struct {
	Company     *string
	Title       *string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time
	Current     *bool
	Description *string
}

type Skill struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency string    `json:"proficiency"`
	CreatedAt   time.Time `json:"created_at"`
}

type SkillPatch struct {
	Name        *string
	Category    *string
	Proficiency *string
}

type Certification struct {
	ID            string     `json:"id"`
	UserID        string     `json:"-"`
	Name          string     `json:"name"`
	Organization  string     `json:"organization"`
	IssueDate     *time.Time `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialID  string     `json:"credential_id"`
	CredentialURL string     `json:"credential_url"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CertificationPatch struct {
	Name          *string
	Organization  *string
	IssueDate     *time.Time
	ExpiryDate    *time.Time
	CredentialID  *string
	CredentialURL *string
}

type Project struct {
	ID           string     `json:"id"`
	UserID       string     `json:"-"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	URL          string     `json:"url"`
	Technologies []string   `json:"technologies"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ProjectPatch struct {
	Name         *string
	Description  *string
	URL          *string
	Technologies []string
	StartDate    *time.Time
	EndDate      *time.Time
}
