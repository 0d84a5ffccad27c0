// validation.go - Field rules a User must satisfy before it can be saved

package models

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go-users-backend/password"
)

const (
	MaxNameLength     = 50
	MaxEmailLength    = 255
	MinPasswordLength = 6
)

// EmailPattern matches local@label.label.tld, case-insensitively.
var EmailPattern = regexp.MustCompile(`(?i)\A[\w+\-.]+@([a-z\d\-]+\.)+[a-z]+\z`)

const (
	msgBlank         = "can't be blank"
	msgInvalid       = "is invalid"
	msgTaken         = "has already been taken"
	msgConfirmation  = "doesn't match Password"
	msgPasswordBytes = "is too long (maximum is 72 bytes)"
)

func msgTooLong(max int) string  { return fmt.Sprintf("is too long (maximum is %d characters)", max) }
func msgTooShort(min int) string { return fmt.Sprintf("is too short (minimum is %d characters)", min) }

// EmailChecker looks up whether an email already belongs to a stored user other than exceptID.
type EmailChecker interface {
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
}

// rule records its failures on errs. A returned error means the rule could not be evaluated.
type rule func(ctx context.Context, u *User, errs Errors) error

// Validator runs the User rules. The zero value validates everything except email uniqueness.
type Validator struct {
	Emails EmailChecker
}

// Validate runs every rule and collects the failures by field. It never mutates u.
func (v Validator) Validate(ctx context.Context, u *User) (Errors, error) {
	errs := Errors{}
	for _, r := range v.rules() {
		if err := r(ctx, u, errs); err != nil {
			return nil, err
		}
	}
	return errs, nil
}

// Valid reports whether u passes every rule.
func (v Validator) Valid(ctx context.Context, u *User) (bool, error) {
	errs, err := v.Validate(ctx, u)
	if err != nil {
		return false, err
	}
	return !errs.Any(), nil
}

func (v Validator) rules() []rule {
	return []rule{
		validateName,
		validateEmail,
		v.validateEmailUnique,
		validatePassword,
		validateSecurePassword,
	}
}

func validateName(_ context.Context, u *User, errs Errors) error {
	if u.Name == "" {
		errs.Add(FieldName, msgBlank)
	}
	if utf8.RuneCountInString(u.Name) > MaxNameLength {
		errs.Add(FieldName, msgTooLong(MaxNameLength))
	}
	return nil
}

func validateEmail(_ context.Context, u *User, errs Errors) error {
	if u.Email == "" {
		errs.Add(FieldEmail, msgBlank)
	}
	if utf8.RuneCountInString(u.Email) > MaxEmailLength {
		errs.Add(FieldEmail, msgTooLong(MaxEmailLength))
	}
	if !EmailPattern.MatchString(u.Email) {
		errs.Add(FieldEmail, msgInvalid)
	}
	return nil
}

// Stored emails are already lowercased, so the candidate is lowercased before an exact comparison.
func (v Validator) validateEmailUnique(ctx context.Context, u *User, errs Errors) error {
	if v.Emails == nil || u.Email == "" {
		return nil
	}
	taken, err := v.Emails.EmailTaken(ctx, strings.ToLower(u.Email), u.ID)
	if err != nil {
		return fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		errs.Add(FieldEmail, msgTaken)
	}
	return nil
}

// Password rules apply to new users and to password changes. Whitespace-only counts as blank.
func validatePassword(_ context.Context, u *User, errs Errors) error {
	if !passwordRequired(u) {
		return nil
	}
	if strings.TrimSpace(u.Password) == "" {
		errs.Add(FieldPassword, msgBlank)
	}
	if utf8.RuneCountInString(u.Password) < MinPasswordLength {
		errs.Add(FieldPassword, msgTooShort(MinPasswordLength))
	}
	return nil
}

func validateSecurePassword(_ context.Context, u *User, errs Errors) error {
	if !passwordRequired(u) {
		return nil
	}
	if errors.Is(password.CheckLength(u.Password), password.ErrTooLong) {
		errs.Add(FieldPassword, msgPasswordBytes)
	}
	if errors.Is(password.CheckConfirmation(u.Password, u.PasswordConfirmation), password.ErrConfirmationMismatch) {
		errs.Add(FieldPasswordConfirmation, msgConfirmation)
	}
	return nil
}

func passwordRequired(u *User) bool {
	return u.IsNew() || u.Password != "" || u.PasswordConfirmation != ""
}
