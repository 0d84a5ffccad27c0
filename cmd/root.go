package cmd

import (
	"context"
	"os"

	"go-users-backend/config"
	"go-users-backend/database"
	"go-users-backend/logger"
	"go-users-backend/password"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env is what every subcommand needs once the root pre-run has finished.
type env struct {
	log   *zap.Logger
	users *database.UserStore
}

// NewRootCmd builds the usersctl command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "usersctl",
		Short:         "Manage user records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.AddCommand(newUserCmd(e))
	return root
}

func (e *env) setup(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	if err := database.Connect(ctx, cfg, log); err != nil {
		log.Error("database connection failed", zap.String("path", cfg.DBPath), zap.Error(err))
		return err
	}

	e.log = log
	e.users = database.NewUserStore(database.DB, password.NewBcrypt(cfg.BcryptCost), log)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
