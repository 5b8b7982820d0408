package domain

// Credentials is the sign-in/sign-up input. Validated locally before any
// network call; the custom password rule lives in utils/validator.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}
