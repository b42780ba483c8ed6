package dto

import "time"

type SignUpRequest struct {
	UID   string `json:"uid" validate:"required"`
	Name  string `json:"name" validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
}

type SignInRequest struct {
	Email   string `json:"email" validate:"required,email"`
	IDToken string `json:"idToken" validate:"required"`
}

// ActionResult is what every auth workflow returns in place of an error.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CurrentUserDTO struct {
	Authenticated bool     `json:"authenticated"`
	User          *UserDTO `json:"user,omitempty"`
}
