// users.go - Persistence for User records

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-users-backend/logger"
	"go-users-backend/models"
	"go-users-backend/password"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrUnknownField       = errors.New("unknown user field")
	ErrSaveFailed         = errors.New("user could not be saved")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// lookupFields are the columns FindBy accepts.
var lookupFields = map[string]bool{
	"id":    true,
	"name":  true,
	"email": true,
}

// UserStore saves and loads users through GORM.
type UserStore struct {
	db        *gorm.DB
	hasher    password.Hasher
	validator models.Validator
	log       *zap.Logger
}

func NewUserStore(db *gorm.DB, hasher password.Hasher, log *zap.Logger) *UserStore {
	if log == nil {
		log = logger.L()
	}
	s := &UserStore{db: db, hasher: hasher, log: log.Named("users")}
	s.validator = models.Validator{Emails: s}
	return s
}

// Validator returns the validator the store runs before every write.
func (s *UserStore) Validator() models.Validator {
	return s.validator
}

// Save normalizes the email, validates the user, hashes a new password and writes the row.
// Validation failures are returned as models.Errors and nothing is written.
// Any write failure, including a unique index violation, is ErrSaveFailed.
func (s *UserStore) Save(ctx context.Context, u *models.User) error {
	u.NormalizeEmail()

	errs, err := s.validator.Validate(ctx, u)
	if err != nil {
		return err
	}
	if errs.Any() {
		s.log.Debug("user rejected", zap.String("email", u.Email), zap.Strings("errors", errs.FullMessages()))
		return errs
	}

	if u.Password != "" {
		digest, err := s.hasher.Hash(u.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = digest
	}

	if err := s.db.WithContext(ctx).Save(u).Error; err != nil {
		s.log.Error("save user failed", zap.String("email", u.Email), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// FindBy returns the first user whose field equals value.
func (s *UserStore) FindBy(ctx context.Context, field string, value any) (*models.User, error) {
	field = strings.ToLower(field)
	if !lookupFields[field] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	var u models.User
	err := s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: field}, Value: value}).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by %s: %w", field, err)
	}
	return &u, nil
}

// Reload replaces u with its persisted state. Transient password fields are cleared.
func (s *UserStore) Reload(ctx context.Context, u *models.User) error {
	if u.IsNew() {
		return ErrNotFound
	}
	var fresh models.User
	if err := s.db.WithContext(ctx).First(&fresh, u.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("reload user %d: %w", u.ID, err)
	}
	*u = fresh
	return nil
}

// EmailTaken reports whether a user other than exceptID is stored with exactly this email.
func (s *UserStore) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	q := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Authenticate looks the user up by email and checks plain against the stored digest.
func (s *UserStore) Authenticate(ctx context.Context, email, plain string) (*models.User, error) {
	u, err := s.FindBy(ctx, "email", strings.ToLower(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.Authenticate(s.hasher, plain) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
