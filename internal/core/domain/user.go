package domain

import "time"

const RoleAdmin = "admin"

// User models an authenticated operator of the admin console. The user store
// is seeded at boot and never mutated by runtime traffic.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
