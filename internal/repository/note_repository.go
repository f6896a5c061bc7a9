package repository

import (
	"errors"
	"fmt"

	"quicknotes-server/internal/domain"

	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(note *domain.Note) error
	// FindByIDAndUser scopes the lookup by owner; a note belonging to a
	// different user is reported as absent, i.e. (nil, nil).
	FindByIDAndUser(id, userID uint) (*domain.Note, error)
	ListByUser(userID uint) ([]*domain.Note, error)
	Update(note *domain.Note) error
	Delete(note *domain.Note) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(note *domain.Note) error {
	if err := r.db.Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (r *noteRepository) FindByIDAndUser(id, userID uint) (*domain.Note, error) {
	var note domain.Note
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query note: %w", err)
	}
	return &note, nil
}

func (r *noteRepository) ListByUser(userID uint) ([]*domain.Note, error) {
	var notes []*domain.Note
	if err := r.db.Where("user_id = ?", userID).Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (r *noteRepository) Update(note *domain.Note) error {
	if err := r.db.Save(note).Error; err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}

func (r *noteRepository) Delete(note *domain.Note) error {
	if err := r.db.Delete(note).Error; err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
