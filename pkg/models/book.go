package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	TypeBook    = "book"
	TypeJournal = "journal"
)

const (
	GenreFiction    = "Fiction"
	GenreNonFiction = "Non-Fiction"
	GenreMystery    = "Mystery"
	GenreSciFi      = "Sci-Fi"
	GenreRomance    = "Romance"
	GenreBiography  = "Biography"
	GenreOther      = "Other"
)

// Book is a catalog entry. Journals share the table and are distinguished by
// the Type column; publisher, issue, and published_date are only populated
// for journals, and author_id only for books. The author reference is weak:
// deleting an author leaves the book's author_id dangling and the expanded
// Author relation null.
type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID            string    `bun:",pk,nullzero" json:"id"`
	Title         string    `bun:",nullzero" json:"title"`
	Type          string    `bun:",nullzero" json:"type"`
	AuthorID      *string   `json:"author_id,omitempty"`
	Author        *Author   `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	Genre         string    `bun:",nullzero" json:"genre"`
	Price         float64   `json:"price"`
	Description   *string   `json:"description,omitempty"`
	PublishedYear *int      `json:"published_year,omitempty"`
	Publisher     *string   `json:"publisher,omitempty"`
	Issue         *string   `json:"issue,omitempty"`
	PublishedDate *string   `json:"published_date,omitempty"`
	InStock       bool      `json:"in_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
