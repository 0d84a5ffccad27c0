// user.go - Defines the User model for the database

package models

import (
	"errors"
	"strings"
	"time"

	"go-users-backend/password"

	"gorm.io/gorm"
)

// ErrMissingPasswordDigest is returned by the save hook when a row would be written without a usable digest.
var ErrMissingPasswordDigest = errors.New("user has no password digest")

type User struct { // User struct represents a user in the database
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:50;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"` // stored lowercased
	PasswordHash string `gorm:"not null" json:"-"`                           // bcrypt digest

	// Plaintext pair, only held in memory while creating a user or changing a password.
	Password             string `gorm:"-" json:"-"`
	PasswordConfirmation string `gorm:"-" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeEmail lowercases the email. The save pathway calls it once per attempt.
func (u *User) NormalizeEmail() {
	u.Email = strings.ToLower(u.Email)
}

// IsNew reports whether the user has not been persisted yet.
func (u *User) IsNew() bool {
	return u.ID == 0
}

// Authenticate checks plain against the stored digest.
func (u *User) Authenticate(h password.Hasher, plain string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return h.Verify(u.PasswordHash, plain)
}

// BeforeSave is the GORM hook run inside the save transaction; an error rolls the write back.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.PasswordHash == "" || (u.Password != "" && u.PasswordHash == u.Password) {
		return ErrMissingPasswordDigest
	}
	return nil
}
