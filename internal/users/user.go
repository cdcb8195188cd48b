package users

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

const MinPasswordLength = 6

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Registration is the data a new account is created from.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *Registration) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
}

func (r Registration) Validate() error {
	if r.Username == "" {
		return pkg.NewValidationError("username", "required")
	}
	if strings.ContainsAny(r.Username, " \t\n") {
		return pkg.NewValidationError("username", "must not contain whitespace")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return pkg.NewValidationError("email", "not a valid address")
	}
	if len(r.Password) < MinPasswordLength {
		return pkg.NewValidationError("password", "too short")
	}
	return nil
}
