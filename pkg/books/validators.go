package books

// CreateBookPayload accepts both catalog entry kinds. The conditional rules
// keep the row shape consistent with its type: books carry an author and
// never journal fields, journals carry publisher/issue and never an author.
type CreateBookPayload struct {
	Title         string  `json:"title" mod:"trim" validate:"required,min=1,max=200"`
	Type          string  `json:"type" default:"book" validate:"oneof=book journal"`
	AuthorID      *string `json:"author_id,omitempty" validate:"required_if=Type book,excluded_if=Type journal,omitempty,uuid"`
	Genre         string  `json:"genre" default:"Other" validate:"oneof=Fiction Non-Fiction Mystery Sci-Fi Romance Biography Other"`
	Price         float64 `json:"price" validate:"min=0"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	PublishedYear *int    `json:"published_year,omitempty" validate:"excluded_if=Type journal,omitempty,pubyear"`
	Publisher     *string `json:"publisher,omitempty" mod:"trim" validate:"required_if=Type journal,excluded_if=Type book,omitempty,max=200"`
	Issue         *string `json:"issue,omitempty" mod:"trim" validate:"required_if=Type journal,excluded_if=Type book,omitempty,max=100"`
	PublishedDate *string `json:"published_date,omitempty" validate:"excluded_if=Type book,omitempty,date"`
	InStock       *bool   `json:"in_stock,omitempty"`
}

// UpdateBookPayload deliberately has no type field: an entry's kind is fixed
// at creation, so a book can never silently turn into a journal. Journal
// fields are edited through the journal routes.
type UpdateBookPayload struct {
	Title         *string  `json:"title,omitempty" mod:"trim" validate:"omitempty,min=1,max=200"`
	AuthorID      *string  `json:"author_id,omitempty" validate:"omitempty,uuid"`
	Genre         *string  `json:"genre,omitempty" validate:"omitempty,oneof=Fiction Non-Fiction Mystery Sci-Fi Romance Biography Other"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	PublishedYear *int     `json:"published_year,omitempty" validate:"omitempty,pubyear"`
	InStock       *bool    `json:"in_stock,omitempty"`
}
