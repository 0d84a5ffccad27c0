package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-users-backend/database"
	"go-users-backend/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errInvalidUser = errors.New("user is invalid")

func newUserCmd(e *env) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Create, show and authenticate users",
	}
	userCmd.AddCommand(
		newUserCreateCmd(e),
		newUserShowCmd(e),
		newUserAuthenticateCmd(e),
	)
	return userCmd
}

func newUserCreateCmd(e *env) *cobra.Command {
	var u models.User

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate and save a new user",
		Long: `Validate and save a new user. Usage:

	usersctl user create --name "Example User" --email user@example.com \
		--password foobar --password-confirmation foobar
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := e.users.Save(cmd.Context(), &u)
			var errs models.Errors
			if errors.As(err, &errs) {
				for _, msg := range errs.FullMessages() {
					cmd.PrintErrln(msg)
				}
				return errInvalidUser
			}
			if err != nil {
				return err
			}
			e.log.Info("user created", zap.Uint("id", u.ID), zap.String("email", u.Email))
			return printUser(cmd, &u)
		},
	}
	cmd.Flags().StringVar(&u.Name, "name", "", "display name")
	cmd.Flags().StringVar(&u.Email, "email", "", "email address")
	cmd.Flags().StringVar(&u.Password, "password", "", "plaintext password")
	cmd.Flags().StringVar(&u.PasswordConfirmation, "password-confirmation", "", "repeat of --password")
	return cmd
}

func newUserShowCmd(e *env) *cobra.Command {
	var (
		email string
		id    uint
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a stored user as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				u   *models.User
				err error
			)
			if id != 0 {
				u, err = e.users.FindBy(cmd.Context(), "id", id)
			} else {
				u, err = e.users.FindBy(cmd.Context(), "email", email)
			}
			if err != nil {
				return err
			}
			return printUser(cmd, u)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "stored (lowercase) email")
	cmd.Flags().UintVar(&id, "id", 0, "user id")
	cmd.MarkFlagsOneRequired("email", "id")
	cmd.MarkFlagsMutuallyExclusive("email", "id")
	return cmd
}

func newUserAuthenticateCmd(e *env) *cobra.Command {
	var email, plain string

	cmd := &cobra.Command{
		Use:   "authenticate",
		Short: "Check a password against the stored digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.users.Authenticate(cmd.Context(), email, plain); err != nil {
				if errors.Is(err, database.ErrInvalidCredentials) {
					e.log.Warn("authentication failed", zap.String("email", email))
				}
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "authenticated")
			return err
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&plain, "password", "", "plaintext password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func printUser(cmd *cobra.Command, u *models.User) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(u)
}
