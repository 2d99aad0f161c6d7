package entity

import (
	"encoding/json"
	"time"
)

// Resume is a stored resume document, usually tailored to one posting.
type Resume struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	JobTitle   string    `json:"job_title"`
	Company    string    `json:"company"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ResumePatch struct {
	Title      *string
	Content    *string
	JobTitle   *string
	Company    *string
	IsFavorite *bool
}

// Preset is a saved resume configuration: which sections to include and in
// what shape. Content is opaque to the backend.
type Preset struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Content     json.RawMessage `json:"content"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PresetPatch struct {
	Name        *string
	Description *string
	Content     json.RawMessage
}
