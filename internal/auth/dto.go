package auth

import "github.com/angelmondragon/fireshop-backend/internal/users"

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResult carries the minted token and the role-based landing path.
type LoginResult struct {
	AccessToken  string
	RedirectPath string
	User         *users.UserDTO
}

// RegisterRequest captures the payload posted by the account creation form.
// New accounts always start as MEMBER; roles are promoted out of band.
type RegisterRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}
