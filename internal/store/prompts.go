package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/promptforge/promptforge/pkg/models"
)

// UpsertPromptSnapshot writes the denormalized title/content snapshot
// on the parent prompt row, creating the row on first save. Readers of
// prompt listings see the current version's content without joining the
// versions table.
func (db *DB) UpsertPromptSnapshot(p *models.Prompt) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	now := formatTime(time.Now())
	_, err := db.conn.Exec(`
		INSERT INTO prompts (id, user_id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			updated_at = excluded.updated_at
	`, p.ID, p.UserID, p.Title, p.Content, now, now)
	if err != nil {
		return fmt.Errorf("upsert prompt snapshot: %w", err)
	}
	return nil
}

// GetPrompt retrieves a prompt row scoped to a user. Returns nil (no
// error) when the prompt does not exist for that user.
func (db *DB) GetPrompt(userID, promptID string) (*models.Prompt, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRow(`
		SELECT id, user_id, title, content, created_at, updated_at
		FROM prompts WHERE id = ? AND user_id = ?
	`, promptID, userID)

	var p models.Prompt
	var createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get prompt: %w", err)
	}

	p.CreatedAt, _ = parseTime(createdAt)
	p.UpdatedAt, _ = parseTime(updatedAt)
	return &p, nil
}

// ListPrompts returns all prompts for a user, most recently updated
// first.
func (db *DB) ListPrompts(userID string) ([]*models.Prompt, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT id, user_id, title, content, created_at, updated_at
		FROM prompts WHERE user_id = ?
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*models.Prompt
	for rows.Next() {
		var p models.Prompt
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		p.CreatedAt, _ = parseTime(createdAt)
		p.UpdatedAt, _ = parseTime(updatedAt)
		prompts = append(prompts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prompts: %w", err)
	}

	return prompts, nil
}
