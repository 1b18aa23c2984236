package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "contact-dedup-hub", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, "phonebook_raw.csv", cfg.CSV.InputPath)
	assert.Equal(t, "phonebook.csv", cfg.CSV.OutputPath)
	assert.Equal(t, ',', cfg.CSV.Delimiter)
	assert.Empty(t, cfg.Merge.IgnoreFields)
	assert.True(t, cfg.IsDebug())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PHONEBOOK_INPUT", "in.csv")
	t.Setenv("PHONEBOOK_OUTPUT", "out")
	t.Setenv("PHONEBOOK_DELIMITER", ";")
	t.Setenv("MERGE_IGNORE_FIELDS", "phone, email ,")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "in.csv", cfg.CSV.InputPath)
	assert.Equal(t, "out", cfg.CSV.OutputPath)
	assert.Equal(t, ';', cfg.CSV.Delimiter)
	assert.Equal(t, []string{"phone", "email"}, cfg.Merge.IgnoreFields)
	assert.False(t, cfg.IsDebug())
}
