package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Account is an authenticated principal. Admins and users live in disjoint
// collections and are never cross-matched.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// PurchasedCourses holds course ids in purchase order. Only populated
	// for user accounts; duplicates are permitted.
	PurchasedCourses []string `json:"purchased_courses,omitempty"`
}
