package journals

type CreateJournalPayload struct {
	Title         string  `json:"title" mod:"trim" validate:"required,min=1,max=200"`
	Publisher     string  `json:"publisher" mod:"trim" validate:"required,max=200"`
	Issue         string  `json:"issue" mod:"trim" validate:"required,max=100"`
	Price         float64 `json:"price" validate:"min=0"`
	PublishedDate *string `json:"published_date,omitempty" validate:"omitempty,date"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	InStock       *bool   `json:"in_stock,omitempty"`
}

type UpdateJournalPayload struct {
	Title         *string  `json:"title,omitempty" mod:"trim" validate:"omitempty,min=1,max=200"`
	Publisher     *string  `json:"publisher,omitempty" mod:"trim" validate:"omitempty,max=200"`
	Issue         *string  `json:"issue,omitempty" mod:"trim" validate:"omitempty,max=100"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	PublishedDate *string  `json:"published_date,omitempty" validate:"omitempty,date"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	InStock       *bool    `json:"in_stock,omitempty"`
}
