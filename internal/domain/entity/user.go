package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User represents an account that can authenticate against the API.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Role         string // admin, manager, staff
	CreatedAt    time.Time
}
