package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestValidate_CollectsAllFieldErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.SheetID = ""
	cfg.HTTP.Burst = 0
	cfg.Reviews.PageSize = -1
	cfg.TUI.TransitionMS = -5

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"sheet_id", "http.burst", "reviews.page_size", "tui.transition_ms"}, fields)
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_BadBaseURL(t *testing.T) {
	cfg := validConfig(t)
	cfg.HTTP.BaseURL = "ftp://example.com"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "http.base_url", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "scheme")
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg.DataDir = file

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "data_dir", fieldErrs[0].Field)
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	cfg.Reviews.ShowRecent = false
	assert.Empty(t, cfg.Warnings())

	cfg.HTTP.MinInterval = 0
	cfg.Sheets.Watchlist.Name = cfg.Sheets.Reviews.Name
	cfg.Reviews.SearchOnly = true
	cfg.Reviews.ShowRecent = true

	warnings := cfg.Warnings()
	require.Len(t, warnings, 3)
	assert.Equal(t, "HTTP", warnings[0].Category)
	assert.Equal(t, "Sheets", warnings[1].Category)
	assert.Equal(t, "Reviews", warnings[2].Category)

	cfg.HTTP.MinInterval = time.Second
	assert.Len(t, cfg.Warnings(), 2)
}
