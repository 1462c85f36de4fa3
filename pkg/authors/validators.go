package authors

type CreateAuthorPayload struct {
	Name        string  `json:"name" mod:"trim" validate:"required,min=1,max=200"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Nationality *string `json:"nationality,omitempty" mod:"trim" validate:"omitempty,max=100"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,date"`
	Website     *string `json:"website,omitempty" mod:"trim" validate:"omitempty,url"`
}

type UpdateAuthorPayload struct {
	Name        *string `json:"name,omitempty" mod:"trim" validate:"omitempty,min=1,max=200"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Nationality *string `json:"nationality,omitempty" mod:"trim" validate:"omitempty,max=100"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,date"`
	Website     *string `json:"website,omitempty" mod:"trim" validate:"omitempty,url"`
}
