package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/promptforge/promptforge/pkg/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	return db
}

func testVersion(id, promptID string, number int) *models.PromptVersion {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.PromptVersion{
		ID:            id,
		PromptID:      promptID,
		UserID:        "alice",
		VersionNumber: number,
		Title:         "Test prompt",
		Content:       "You are a helpful assistant.",
		IsCurrent:     true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.Migrate(); err != nil {
		t.Fatalf("second Migrate() error: %v", err)
	}
}

func TestInsertVersionAsCurrentClearsOthers(t *testing.T) {
	db := openTestDB(t)

	if err := db.InsertVersionAsCurrent(testVersion("v1", "p1", 1)); err != nil {
		t.Fatalf("insert v1: %v", err)
	}
	if err := db.InsertVersionAsCurrent(testVersion("v2", "p1", 2)); err != nil {
		t.Fatalf("insert v2: %v", err)
	}

	versions, err := db.VersionsByPrompt("alice", "p1")
	if err != nil {
		t.Fatalf("VersionsByPrompt() error: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("got %d versions, want 2", len(versions))
	}

	currentCount := 0
	for _, v := range versions {
		if v.IsCurrent {
			currentCount++
			if v.ID != "v2" {
				t.Errorf("current version is %s, want v2", v.ID)
			}
		}
	}
	if currentCount != 1 {
		t.Errorf("got %d current versions, want exactly 1", currentCount)
	}
}

func TestInsertVersionDoesNotTouchOtherPrompts(t *testing.T) {
	db := openTestDB(t)

	if err := db.InsertVersionAsCurrent(testVersion("v1", "p1", 1)); err != nil {
		t.Fatalf("insert v1: %v", err)
	}
	if err := db.InsertVersionAsCurrent(testVersion("v2", "p2", 1)); err != nil {
		t.Fatalf("insert v2: %v", err)
	}

	v, err := db.GetVersion("alice", "v1")
	if err != nil {
		t.Fatalf("GetVersion() error: %v", err)
	}
	if !v.IsCurrent {
		t.Error("version of prompt p1 lost its current flag after insert on p2")
	}
}

func TestVersionNumberUniquePerPrompt(t *testing.T) {
	db := openTestDB(t)

	if err := db.InsertVersionAsCurrent(testVersion("v1", "p1", 1)); err != nil {
		t.Fatalf("insert v1: %v", err)
	}
	if err := db.InsertVersionAsCurrent(testVersion("v2", "p1", 1)); err == nil {
		t.Error("inserting a duplicate version number succeeded, want constraint error")
	}
}

func TestSetCurrent(t *testing.T) {
	db := openTestDB(t)

	db.InsertVersionAsCurrent(testVersion("v1", "p1", 1))
	db.InsertVersionAsCurrent(testVersion("v2", "p1", 2))

	if err := db.SetCurrent("v1"); err != nil {
		t.Fatalf("SetCurrent() error: %v", err)
	}

	v1, _ := db.GetVersion("alice", "v1")
	v2, _ := db.GetVersion("alice", "v2")
	if !v1.IsCurrent {
		t.Error("v1 not current after SetCurrent")
	}
	if v2.IsCurrent {
		t.Error("v2 still current after SetCurrent(v1)")
	}
}

func TestSetCurrentUnknownVersion(t *testing.T) {
	db := openTestDB(t)
	if err := db.SetCurrent("missing"); err == nil {
		t.Error("SetCurrent on unknown version succeeded, want error")
	}
}

func TestDeleteVersion(t *testing.T) {
	db := openTestDB(t)
	db.InsertVersionAsCurrent(testVersion("v1", "p1", 1))

	if err := db.DeleteVersion("v1"); err != nil {
		t.Fatalf("DeleteVersion() error: %v", err)
	}
	v, err := db.GetVersion("alice", "v1")
	if err != nil {
		t.Fatalf("GetVersion() error: %v", err)
	}
	if v != nil {
		t.Error("version still present after delete")
	}

	if err := db.DeleteVersion("v1"); err == nil {
		t.Error("deleting an already-deleted version succeeded, want error")
	}
}

func TestGetVersionScopedToUser(t *testing.T) {
	db := openTestDB(t)
	db.InsertVersionAsCurrent(testVersion("v1", "p1", 1))

	v, err := db.GetVersion("mallory", "v1")
	if err != nil {
		t.Fatalf("GetVersion() error: %v", err)
	}
	if v != nil {
		t.Error("version visible to a different user")
	}
}

func TestVersionsByPromptOrder(t *testing.T) {
	db := openTestDB(t)
	db.InsertVersionAsCurrent(testVersion("v1", "p1", 1))
	db.InsertVersionAsCurrent(testVersion("v2", "p1", 2))
	db.InsertVersionAsCurrent(testVersion("v3", "p1", 3))

	versions, err := db.VersionsByPrompt("alice", "p1")
	if err != nil {
		t.Fatalf("VersionsByPrompt() error: %v", err)
	}

	want := []int{3, 2, 1}
	for i, v := range versions {
		if v.VersionNumber != want[i] {
			t.Errorf("position %d: version number %d, want %d", i, v.VersionNumber, want[i])
		}
	}
}

func TestVersionRoundTrip(t *testing.T) {
	db := openTestDB(t)

	in := testVersion("v1", "p1", 1)
	in.ChangeDescription = "initial draft"
	in.ParentVersionID = "origin"
	if err := db.InsertVersionAsCurrent(in); err != nil {
		t.Fatalf("insert: %v", err)
	}

	out, err := db.GetVersion("alice", "v1")
	if err != nil {
		t.Fatalf("GetVersion() error: %v", err)
	}
	if out.Title != in.Title || out.Content != in.Content ||
		out.ChangeDescription != in.ChangeDescription || out.ParentVersionID != in.ParentVersionID {
		t.Errorf("round trip mismatch: got %+v", out)
	}
	if !out.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("created_at = %v, want %v", out.CreatedAt, in.CreatedAt)
	}
}

func TestUpsertPromptSnapshot(t *testing.T) {
	db := openTestDB(t)

	p := &models.Prompt{ID: "p1", UserID: "alice", Title: "First", Content: "one"}
	if err := db.UpsertPromptSnapshot(p); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	p.Title = "Second"
	p.Content = "two"
	if err := db.UpsertPromptSnapshot(p); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := db.GetPrompt("alice", "p1")
	if err != nil {
		t.Fatalf("GetPrompt() error: %v", err)
	}
	if got.Title != "Second" || got.Content != "two" {
		t.Errorf("snapshot not updated: %+v", got)
	}

	prompts, err := db.ListPrompts("alice")
	if err != nil {
		t.Fatalf("ListPrompts() error: %v", err)
	}
	if len(prompts) != 1 {
		t.Errorf("got %d prompts, want 1 after upsert", len(prompts))
	}
}
