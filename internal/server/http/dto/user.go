package dto

import (
	"time"

	"github.com/userhub/userhub/internal/domain/model"
)

// CreateUserRequest describes the account creation payload. Email syntax is
// validated at binding time; deeper rules live in the use case.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" binding:"required"`
}

// UserResponse is the outward projection of a user. It has no credential
// field at the type level, so no handler can leak one.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrorResponse carries a human-readable failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewUserResponse projects a stored user into response shape.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserResponses projects a sequence of users, preserving order. The
// result is never nil so an empty store serializes as an empty array.
func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
