package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string
	PasswordHash string
}

// NewUser builds a user record around an already-derived password hash.
// Hashing lives in infrastructure so the entity never holds a plaintext.
func NewUser(email, passwordHash string) *User {
	return &User{
		Id:           uuid.New(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Email:        email,
		PasswordHash: passwordHash,
	}
}

func (u *User) validate() error {
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

func (u *User) ChangePasswordHash(passwordHash string) error {
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return u.validate()
}
