// Package notes implements owner-scoped CRUD over the notes table.
// Every operation requires a resolved account id and only touches rows
// owned by it; the owner predicate in the repository is the sole
// authorization mechanism.
package notes

import (
	"context"
	"time"

	"pasteboard/internal/common"
	"pasteboard/internal/database/models"
	"pasteboard/internal/database/repositories"
)

type Service struct {
	notes repositories.NoteRepository

	now func() time.Time
}

func NewService(notes repositories.NoteRepository) *Service {
	return &Service{notes: notes, now: time.Now}
}

// List returns the caller's notes, most recently updated first. A user
// with no notes gets an empty slice, not an error.
func (s *Service) List(ctx context.Context, ownerID int64) ([]models.Note, error) {
	return s.notes.GetAllByOwner(ctx, ownerID)
}

func (s *Service) Get(ctx context.Context, id int64, ownerID int64) (*models.Note, error) {
	return s.notes.GetByID(ctx, id, ownerID)
}

func (s *Service) Create(ctx context.Context, ownerID int64, content string) (*models.Note, error) {
	if content == "" {
		return nil, common.ErrContentRequired
	}
	note := &models.Note{UserID: ownerID, Content: content}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update replaces the note's content and bumps its updated timestamp.
// The existence check is a separate read before the write; ownership
// cannot change concurrently, so the two steps need no transaction.
func (s *Service) Update(ctx context.Context, id int64, ownerID int64, content string) (*models.Note, error) {
	if content == "" {
		return nil, common.ErrContentRequired
	}
	if _, err := s.notes.GetByID(ctx, id, ownerID); err != nil {
		return nil, err
	}
	if err := s.notes.Update(ctx, id, ownerID, content, s.now()); err != nil {
		return nil, err
	}
	return s.notes.GetByID(ctx, id, ownerID)
}

// Delete removes the note after the same check-then-act read as Update.
func (s *Service) Delete(ctx context.Context, id int64, ownerID int64) error {
	if _, err := s.notes.GetByID(ctx, id, ownerID); err != nil {
		return err
	}
	return s.notes.Delete(ctx, id, ownerID)
}
