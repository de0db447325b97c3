package models

import "time"

// Prompt is the parent row for a saved prompt. Title and Content are a
// denormalized snapshot of the current version so listings never need to
// join the versions table.
type Prompt struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PromptVersion is one revision of a saved prompt. Exactly one version
// per prompt has IsCurrent set; version numbers increase monotonically
// and are never reused, even after deletes.
type PromptVersion struct {
	ID                string    `json:"id"`
	PromptID          string    `json:"prompt_id"`
	UserID            string    `json:"user_id"`
	VersionNumber     int       `json:"version_number"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	ChangeDescription string    `json:"change_description,omitempty"`
	ParentVersionID   string    `json:"parent_version_id,omitempty"`
	IsCurrent         bool      `json:"is_current"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// VersionHistory is a derived read view over all versions of a prompt,
// ordered by version number descending.
type VersionHistory struct {
	Versions       []*PromptVersion `json:"versions"`
	TotalVersions  int              `json:"total_versions"`
	CurrentVersion *PromptVersion   `json:"current_version"`
	RecentChanges  []*PromptVersion `json:"recent_changes"`
}

// DiffType labels one line of a positional diff.
type DiffType string

const (
	DiffAdded     DiffType = "added"
	DiffRemoved   DiffType = "removed"
	DiffUnchanged DiffType = "unchanged"
)

// DiffEntry is one line of a positional diff between two version
// contents. LineNumber is 1-based and aligned to the longer of the two
// compared contents.
type DiffEntry struct {
	Type       DiffType `json:"type"`
	Content    string   `json:"content"`
	LineNumber int      `json:"line_number"`
}
