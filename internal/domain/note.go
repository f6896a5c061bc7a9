package domain

import "time"

type Note struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	UserID      uint      `json:"userId" gorm:"index;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NoteRequest is the body for both note creation and update; an update
// overwrites title and description wholesale.
type NoteRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}
