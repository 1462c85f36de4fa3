package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Author struct {
	bun.BaseModel `bun:"table:authors,alias:a"`

	ID          string    `bun:",pk,nullzero" json:"id"`
	Name        string    `bun:",nullzero" json:"name"`
	Bio         *string   `json:"bio,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	DateOfBirth *string   `json:"date_of_birth,omitempty"`
	Website     *string   `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// BookCount is computed by a grouped count over books and is not a
	// column.
	BookCount int `bun:"-" json:"book_count"`
}
