package dto

import "time"

// RegisterRequest body for POST /api/auth/register. SignupCode is optional;
// a matching configured code grants the admin or manager role, anything else
// registers as staff.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	SignupCode string `json:"signup_code,omitempty"`
}

// LoginRequest body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse public view of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token plus user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
