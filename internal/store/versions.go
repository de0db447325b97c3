package store

import (
	"database/sql"
	"fmt"

	"github.com/promptforge/promptforge/pkg/models"
)

// InsertVersionAsCurrent inserts a version row and makes it the current
// version of its prompt in one transaction: all other versions of the
// prompt have their current flag cleared before the insert. This is the
// storage half of the single-current invariant; deciding when a version
// becomes current belongs to the versions package.
func (db *DB) InsertVersionAsCurrent(v *models.PromptVersion) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(`UPDATE prompt_versions SET is_current = 0 WHERE prompt_id = ?`, v.PromptID); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear current flags: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO prompt_versions
			(id, prompt_id, user_id, version_number, title, content,
			 change_description, parent_version_id, is_current, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
	`, v.ID, v.PromptID, v.UserID, v.VersionNumber, v.Title, v.Content,
		v.ChangeDescription, v.ParentVersionID, formatTime(v.CreatedAt), formatTime(v.UpdatedAt))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert version: %w", err)
	}
	return nil
}

// SetCurrent flips the current flag to the given version, clearing it
// from every other version of the same prompt in the same transaction.
func (db *DB) SetCurrent(versionID string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	var promptID string
	if err := tx.QueryRow(`SELECT prompt_id FROM prompt_versions WHERE id = ?`, versionID).Scan(&promptID); err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return fmt.Errorf("set current: version %s not found", versionID)
		}
		return fmt.Errorf("load version prompt: %w", err)
	}

	if _, err := tx.Exec(`UPDATE prompt_versions SET is_current = 0 WHERE prompt_id = ?`, promptID); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear current flags: %w", err)
	}

	if _, err := tx.Exec(`UPDATE prompt_versions SET is_current = 1 WHERE id = ?`, versionID); err != nil {
		tx.Rollback()
		return fmt.Errorf("set current flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set current: %w", err)
	}
	return nil
}

// DeleteVersion removes a version row. Guarding against deleting the
// current version is the caller's responsibility.
func (db *DB) DeleteVersion(versionID string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	res, err := db.conn.Exec(`DELETE FROM prompt_versions WHERE id = ?`, versionID)
	if err != nil {
		return fmt.Errorf("delete version: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete version: %s not found", versionID)
	}
	return nil
}

const versionColumns = `id, prompt_id, user_id, version_number, title, content,
	change_description, parent_version_id, is_current, created_at, updated_at`

// GetVersion retrieves one version scoped to a user. Returns nil (no
// error) when the version does not exist for that user.
func (db *DB) GetVersion(userID, versionID string) (*models.PromptVersion, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRow(
		`SELECT `+versionColumns+` FROM prompt_versions WHERE id = ? AND user_id = ?`,
		versionID, userID)

	v, err := scanVersion(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}
	return v, nil
}

// VersionsByPrompt returns all versions of a prompt for a user, ordered
// by version number descending.
func (db *DB) VersionsByPrompt(userID, promptID string) ([]*models.PromptVersion, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(
		`SELECT `+versionColumns+` FROM prompt_versions
		 WHERE prompt_id = ? AND user_id = ?
		 ORDER BY version_number DESC`,
		promptID, userID)
	if err != nil {
		return nil, fmt.Errorf("query versions: %w", err)
	}
	defer rows.Close()

	var versions []*models.PromptVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate versions: %w", err)
	}

	return versions, nil
}

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanVersion(s scanner) (*models.PromptVersion, error) {
	var v models.PromptVersion
	var isCurrent int
	var createdAt, updatedAt string

	err := s.Scan(&v.ID, &v.PromptID, &v.UserID, &v.VersionNumber, &v.Title, &v.Content,
		&v.ChangeDescription, &v.ParentVersionID, &isCurrent, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	v.IsCurrent = isCurrent != 0
	v.CreatedAt, _ = parseTime(createdAt)
	v.UpdatedAt, _ = parseTime(updatedAt)
	return &v, nil
}
