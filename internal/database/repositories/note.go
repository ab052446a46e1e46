package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pasteboard/internal/common"
	"pasteboard/internal/database/models"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id int64, userID int64) (*models.Note, error)
	GetAllByOwner(ctx context.Context, userID int64) ([]models.Note, error)
	Update(ctx context.Context, id int64, userID int64, content string, now time.Time) error
	Delete(ctx context.Context, id int64, userID int64) error
}

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	now := time.Now()
	query := `INSERT INTO notes (user_id, content, created_at, updated_at) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, note.UserID, note.Content, now.Unix(), now.Unix())
	if err != nil {
		return fmt.Errorf("error creating note: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error getting inserted note id: %w", err)
	}
	note.ID = id
	note.CreatedAt = now
	note.UpdatedAt = now
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id int64, userID int64) (*models.Note, error) {
	note := models.Note{}
	var createdAt, updatedAt int64
	query := `SELECT id, user_id, content, created_at, updated_at FROM notes WHERE id = ? AND user_id = ?`
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&note.ID, &note.UserID, &note.Content, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting note: %w", err)
	}
	note.CreatedAt = time.Unix(createdAt, 0)
	note.UpdatedAt = time.Unix(updatedAt, 0)
	return &note, nil
}

func (r *noteRepository) GetAllByOwner(ctx context.Context, userID int64) ([]models.Note, error) {
	query := `SELECT id, user_id, content, created_at, updated_at FROM notes WHERE user_id = ? ORDER BY updated_at DESC, id DESC`
	result, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	defer result.Close()

	notes := []models.Note{}
	for result.Next() {
		var note models.Note
		var createdAt, updatedAt int64
		err := result.Scan(
			&note.ID,
			&note.UserID,
			&note.Content,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		note.CreatedAt = time.Unix(createdAt, 0)
		note.UpdatedAt = time.Unix(updatedAt, 0)
		notes = append(notes, note)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}
	return notes, nil
}

func (r *noteRepository) Update(ctx context.Context, id int64, userID int64, content string, now time.Time) error {
	query := `UPDATE notes SET content = ?, updated_at = ? WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, content, now.Unix(), id, userID)
	if err != nil {
		return fmt.Errorf("error updating note: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id int64, userID int64) error {
	query := `DELETE FROM notes WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}
