// Package versions implements the version history manager for saved
// prompts: ordered branchable revisions, a single current version per
// prompt, and positional diffs between revisions.
package versions

import "fmt"

// NotFoundError is returned when a version or history lookup misses.
// It is surfaced to the caller; the situation is recoverable by the
// user.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// InvalidOperationError is returned for guarded operations such as
// deleting the current version or saving malformed input. Reason is
// human-readable and suitable for direct display.
type InvalidOperationError struct {
	Op     string
	Reason string
}

// Error implements the error interface.
func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
