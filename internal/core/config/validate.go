package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid. It does no
// I/O; ValidateDeep adds file checks.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" {
		errs = errs.Append("data_dir", errors.New("cannot be empty"))
	}
	if c.SheetID == "" {
		errs = errs.Append("sheet_id", errors.New("cannot be empty"))
	}
	if c.Sheets.Reviews.Name == "" {
		errs = errs.Append("sheets.reviews.name", errors.New("cannot be empty"))
	}
	if c.Sheets.Watchlist.Name == "" {
		errs = errs.Append("sheets.watchlist.name", errors.New("cannot be empty"))
	}
	if c.HTTP.Timeout < 0 {
		errs = errs.Append("http.timeout", errors.New("must not be negative"))
	}
	if c.HTTP.MinInterval < 0 {
		errs = errs.Append("http.min_interval", errors.New("must not be negative"))
	}
	if c.HTTP.Burst < 1 {
		errs = errs.Append("http.burst", errors.New("must be at least 1"))
	}
	if c.Reviews.PageSize < 1 {
		errs = errs.Append("reviews.page_size", errors.New("must be at least 1"))
	}
	if c.Reviews.RecentCount < 1 {
		errs = errs.Append("reviews.recent_count", errors.New("must be at least 1"))
	}
	switch c.Reviews.AbsentRating {
	case AbsentRatingKeep, AbsentRatingZero:
	default:
		errs = errs.Append("reviews.absent_rating",
			fmt.Errorf("must be %q or %q, got %q", AbsentRatingKeep, AbsentRatingZero, c.Reviews.AbsentRating))
	}
	if c.TUI.TransitionMS < 0 {
		errs = errs.Append("tui.transition_ms", errors.New("must not be negative"))
	}
	if c.Database.MaxOpenConns < 1 {
		errs = errs.Append("database.max_open_conns", errors.New("must be at least 1"))
	}
	if c.Database.MaxIdleConns < 0 {
		errs = errs.Append("database.max_idle_conns", errors.New("must not be negative"))
	}

	return errs.ToError()
}

// ValidateDeep performs comprehensive validation of the configuration
// including the base URL and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips the
// config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("http.base_url", c.HTTP.BaseURL, isHTTPURL),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.HTTP.MinInterval == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "HTTP",
			Item:     "http.min_interval",
			Message:  "refetches are not rate limited",
		})
	}

	if c.Sheets.Reviews.Name == c.Sheets.Watchlist.Name {
		warnings = append(warnings, ValidationWarning{
			Category: "Sheets",
			Item:     c.Sheets.Reviews.Name,
			Message:  "reviews and watchlist read the same sheet",
		})
	}

	if c.Reviews.SearchOnly && c.Reviews.ShowRecent {
		warnings = append(warnings, ValidationWarning{
			Category: "Reviews",
			Item:     "reviews.search_only",
			Message:  "recent strip is shown alongside search-only listing",
		})
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func isHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
