package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // keep a developer .env out of the test

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.HasSeedUser())
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_PATH", "users.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("SEED_USER_NAME", "Seed User")
	t.Setenv("SEED_USER_EMAIL", "seed@example.com")
	t.Setenv("SEED_USER_PASSWORD", "seedpass")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "users.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.True(t, cfg.HasSeedUser())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"log level":    {"LOG_LEVEL", "verbose"},
		"log format":   {"LOG_FORMAT", "xml"},
		"bcrypt cost":  {"BCRYPT_COST", "2"},
		"partial seed": {"SEED_USER_EMAIL", "seed@example.com"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
