package service

import (
	"fmt"

	"quicknotes-server/internal/apperr"
	"quicknotes-server/internal/domain"
	"quicknotes-server/internal/repository"
)

type NoteService struct {
	repo repository.NoteRepository
}

func NewNoteService(repo repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) Create(userID uint, req *domain.NoteRequest) (*domain.Note, error) {
	note := &domain.Note{
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
	}

	if err := s.repo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

func (s *NoteService) List(userID uint) ([]*domain.Note, error) {
	notes, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	if notes == nil {
		notes = []*domain.Note{}
	}
	return notes, nil
}

func (s *NoteService) GetByID(userID, noteID uint) (*domain.Note, error) {
	note, err := s.repo.FindByIDAndUser(noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}
	if note == nil {
		return nil, apperr.NotFound("note with id %d not found", noteID)
	}
	return note, nil
}

// Update overwrites title and description; a store failure after the
// ownership check surfaces as internal, never as not found.
func (s *NoteService) Update(userID, noteID uint, req *domain.NoteRequest) (*domain.Note, error) {
	note, err := s.GetByID(userID, noteID)
	if err != nil {
		return nil, err
	}

	note.Title = req.Title
	note.Description = req.Description

	if err := s.repo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// Delete removes the note and returns its prior state.
func (s *NoteService) Delete(userID, noteID uint) (*domain.Note, error) {
	note, err := s.GetByID(userID, noteID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(note); err != nil {
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	return note, nil
}
