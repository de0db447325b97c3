package versions

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/promptforge/promptforge/pkg/models"
)

// recentChangesLimit is how many versions the history view surfaces as
// recent changes.
const recentChangesLimit = 5

// minContentLength guards against saving junk versions.
const minContentLength = 1

// Store is the storage adapter the manager drives. Implementations
// perform no business logic; the transactional methods exist so the
// single-current invariant holds atomically even with concurrent
// writers on the same prompt.
type Store interface {
	InsertVersionAsCurrent(v *models.PromptVersion) error
	SetCurrent(versionID string) error
	DeleteVersion(versionID string) error
	GetVersion(userID, versionID string) (*models.PromptVersion, error)
	VersionsByPrompt(userID, promptID string) ([]*models.PromptVersion, error)
	UpsertPromptSnapshot(p *models.Prompt) error
}

// Manager enforces the version-history invariants on top of a Store:
// exactly one current version per prompt, monotonically increasing
// never-reused version numbers, and no deletion of the current version.
type Manager struct {
	store Store
	now   func() time.Time
}

// NewManager creates a Manager over the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// SetClock replaces the manager's clock, for tests.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// GetHistory returns the full version history of a prompt, ordered by
// version number descending. It fails with NotFoundError when the
// prompt has no versions.
func (m *Manager) GetHistory(userID, promptID string) (*models.VersionHistory, error) {
	versions, err := m.store.VersionsByPrompt(userID, promptID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if len(versions) == 0 {
		return nil, &NotFoundError{Resource: "prompt history", ID: promptID}
	}

	history := &models.VersionHistory{
		Versions:      versions,
		TotalVersions: len(versions),
	}
	for _, v := range versions {
		if v.IsCurrent {
			history.CurrentVersion = v
			break
		}
	}

	recent := len(versions)
	if recent > recentChangesLimit {
		recent = recentChangesLimit
	}
	history.RecentChanges = versions[:recent]

	return history, nil
}

// GetVersion returns one version. Fails with NotFoundError when the
// version does not exist for this user.
func (m *Manager) GetVersion(userID, versionID string) (*models.PromptVersion, error) {
	v, err := m.store.GetVersion(userID, versionID)
	if err != nil {
		return nil, fmt.Errorf("load version: %w", err)
	}
	if v == nil {
		return nil, &NotFoundError{Resource: "version", ID: versionID}
	}
	return v, nil
}

// CreateVersion appends a new version to a prompt and makes it current.
// The version number is max(existing)+1 and is never reused, even after
// deletes. The parent prompt's denormalized snapshot is updated so
// listings reflect the new content.
func (m *Manager) CreateVersion(userID, promptID, title, content, changeDescription, parentVersionID string) (*models.PromptVersion, error) {
	if title == "" {
		return nil, &InvalidOperationError{Op: "create version", Reason: "title must not be empty"}
	}
	if len(content) < minContentLength {
		return nil, &InvalidOperationError{Op: "create version", Reason: "content must not be empty"}
	}

	existing, err := m.store.VersionsByPrompt(userID, promptID)
	if err != nil {
		return nil, fmt.Errorf("load existing versions: %w", err)
	}

	next := 1
	for _, v := range existing {
		if v.VersionNumber >= next {
			next = v.VersionNumber + 1
		}
	}

	now := m.now()
	v := &models.PromptVersion{
		ID:                uuid.New().String(),
		PromptID:          promptID,
		UserID:            userID,
		VersionNumber:     next,
		Title:             title,
		Content:           content,
		ChangeDescription: changeDescription,
		ParentVersionID:   parentVersionID,
		IsCurrent:         true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := m.store.InsertVersionAsCurrent(v); err != nil {
		return nil, fmt.Errorf("insert version: %w", err)
	}

	if err := m.updateSnapshot(userID, promptID, title, content); err != nil {
		return nil, err
	}

	return v, nil
}

// SetCurrentVersion promotes a version to current. All other versions
// of the same prompt lose the flag in the same transaction, and the
// prompt snapshot is updated to the promoted content.
func (m *Manager) SetCurrentVersion(userID, versionID string) (*models.PromptVersion, error) {
	v, err := m.GetVersion(userID, versionID)
	if err != nil {
		return nil, err
	}

	if err := m.store.SetCurrent(v.ID); err != nil {
		return nil, fmt.Errorf("promote version: %w", err)
	}
	v.IsCurrent = true

	if err := m.updateSnapshot(userID, v.PromptID, v.Title, v.Content); err != nil {
		return nil, err
	}

	return v, nil
}

// DeleteVersion removes a non-current version. Deleting the current
// version fails with InvalidOperationError and leaves the store
// unchanged. Remaining version numbers are never renumbered.
func (m *Manager) DeleteVersion(userID, versionID string) error {
	v, err := m.GetVersion(userID, versionID)
	if err != nil {
		return err
	}
	if v.IsCurrent {
		return &InvalidOperationError{
			Op:     "delete version",
			Reason: fmt.Sprintf("version %d is the current version; promote another version first", v.VersionNumber),
		}
	}

	if err := m.store.DeleteVersion(v.ID); err != nil {
		return fmt.Errorf("delete version: %w", err)
	}
	return nil
}

// BranchFromVersion creates a new version whose parent is the given
// version. The parent link is a weak reference: deleting the parent
// later does not affect the branch.
func (m *Manager) BranchFromVersion(userID, versionID, newTitle, newContent, changeDescription string) (*models.PromptVersion, error) {
	src, err := m.GetVersion(userID, versionID)
	if err != nil {
		return nil, err
	}

	if changeDescription == "" {
		changeDescription = fmt.Sprintf("Branched from version %d", src.VersionNumber)
	}

	return m.CreateVersion(userID, src.PromptID, newTitle, newContent, changeDescription, src.ID)
}

// DiffVersions loads two versions and returns the positional diff of
// their contents, oldest-to-newest left to right.
func (m *Manager) DiffVersions(userID, versionIDA, versionIDB string) ([]models.DiffEntry, error) {
	a, err := m.GetVersion(userID, versionIDA)
	if err != nil {
		return nil, err
	}
	b, err := m.GetVersion(userID, versionIDB)
	if err != nil {
		return nil, err
	}
	return Diff(a.Content, b.Content), nil
}

func (m *Manager) updateSnapshot(userID, promptID, title, content string) error {
	err := m.store.UpsertPromptSnapshot(&models.Prompt{
		ID:      promptID,
		UserID:  userID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("update prompt snapshot: %w", err)
	}
	return nil
}
