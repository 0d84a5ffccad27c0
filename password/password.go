// password.go - Password hashing and the checks that come with it

package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes is the longest plaintext bcrypt will hash.
const MaxBytes = 72

var (
	ErrTooLong              = errors.New("password exceeds 72 bytes")
	ErrConfirmationMismatch = errors.New("password confirmation does not match")
)

// Hasher computes and verifies salted password digests.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// Bcrypt is a Hasher backed by golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a bcrypt Hasher. Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	if err := CheckLength(plain); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *Bcrypt) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// CheckLength rejects plaintexts bcrypt would refuse.
func CheckLength(plain string) error {
	if len(plain) > MaxBytes {
		return ErrTooLong
	}
	return nil
}

// CheckConfirmation rejects a confirmation that differs from the password.
func CheckConfirmation(plain, confirmation string) error {
	if plain != confirmation {
		return ErrConfirmationMismatch
	}
	return nil
}
