package users

// RegisterPayload has no role field: self-registration always creates a
// regular user. Admin accounts are seeded at startup.
type RegisterPayload struct {
	Email    string `json:"email" mod:"trim" validate:"required,email,max=200"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginPayload struct {
	Email    string `json:"email" mod:"trim" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
