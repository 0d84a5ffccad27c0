// database.go - Handles database connection and setup

package database

import (
	"context"
	"fmt"
	"strings"

	"go-users-backend/config"
	"go-users-backend/models"
	"go-users-backend/password"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB // Shared connection, set by Connect

// Open opens the SQLite database at dbPath with SQL logging routed through log.
func Open(dbPath string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         newGormLogger(log, gormlogger.Warn),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dbPath, err)
	}
	return db, nil
}

// Migrate creates or updates the users table, including the unique email index.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

// Connect opens the configured database, migrates it and creates the seed user if configured.
func Connect(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	db, err := Open(cfg.DBPath, log)
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	DB = db

	store := NewUserStore(db, password.NewBcrypt(cfg.BcryptCost), log)
	return createSeedUser(ctx, cfg, store)
}

// createSeedUser creates the configured seed user unless one with that email already exists.
// It goes through the regular save pathway, so the configured values must be valid.
func createSeedUser(ctx context.Context, cfg *config.Config, store *UserStore) error {
	if !cfg.HasSeedUser() {
		return nil
	}

	seed := &models.User{
		Name:                 cfg.SeedUserName,
		Email:                cfg.SeedUserEmail,
		Password:             cfg.SeedUserPassword,
		PasswordConfirmation: cfg.SeedUserPassword,
	}
	taken, err := store.EmailTaken(ctx, strings.ToLower(seed.Email), 0)
	if err != nil {
		return err
	}
	if taken {
		return nil
	}

	if err := store.Save(ctx, seed); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	store.log.Info("seed user created", zap.Uint("id", seed.ID), zap.String("email", seed.Email))
	return nil
}
