// Package config handles configuration loading and validation for reel.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSheetID is the public spreadsheet that holds the reviews.
const DefaultSheetID = "1KAFkfG8Q0j--wtUM152ZsBv-U6lzvh8xk_u4ObK7HGM"

// Absent rating policies accepted by reviews.absent_rating.
const (
	AbsentRatingKeep = "absent"
	AbsentRatingZero = "zero"
)

// Config holds the application configuration.
type Config struct {
	SheetID  string         `yaml:"sheet_id"`
	Sheets   SheetsConfig   `yaml:"sheets"`
	HTTP     HTTPConfig     `yaml:"http"`
	Reviews  ReviewsConfig  `yaml:"reviews"`
	TUI      TUIConfig      `yaml:"tui"`
	Database DatabaseConfig `yaml:"database"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// SheetsConfig names the two tabs of the spreadsheet.
type SheetsConfig struct {
	Reviews   SheetConfig `yaml:"reviews"`
	Watchlist SheetConfig `yaml:"watchlist"`
}

// SheetConfig describes a single sheet tab.
type SheetConfig struct {
	Name          string `yaml:"name"`
	SkipHeaderRow bool   `yaml:"skip_header_row"` // drop row 0 when the header is part of the data
}

// HTTPConfig holds settings for the sheet client.
type HTTPConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	MinInterval time.Duration `yaml:"min_interval"` // minimum spacing between requests, 0 = unlimited
	Burst       int           `yaml:"burst"`
}

// ReviewsConfig holds settings for the review listing.
type ReviewsConfig struct {
	PageSize      int    `yaml:"page_size"`
	ShowRecent    bool   `yaml:"show_recent"`
	RecentCount   int    `yaml:"recent_count"`
	SearchOnly    bool   `yaml:"search_only"`
	AbsentRating  string `yaml:"absent_rating"` // absent or zero
	PrimaryName   string `yaml:"primary_name"`
	SecondaryName string `yaml:"secondary_name"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	TransitionMS int `yaml:"transition_ms"` // tab fade delay, 0 disables
}

// DatabaseConfig holds SQLite pool settings for the preference database.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SheetID: DefaultSheetID,
		Sheets: SheetsConfig{
			Reviews:   SheetConfig{Name: "Sheet1"},
			Watchlist: SheetConfig{Name: "Sheet2"},
		},
		HTTP: HTTPConfig{
			BaseURL:     "https://docs.google.com/spreadsheets/d",
			Timeout:     15 * time.Second,
			MinInterval: time.Second,
			Burst:       2,
		},
		Reviews: ReviewsConfig{
			PageSize:      20,
			ShowRecent:    true,
			RecentCount:   5,
			AbsentRating:  AbsentRatingKeep,
			PrimaryName:   "Ben",
			SecondaryName: "Laza",
		},
		TUI: TUIConfig{
			TransitionMS: 500,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 4,
			MaxIdleConns: 2,
			BusyTimeout:  5000,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// Fields where zero is meaningful (transition_ms, min_interval) are left alone.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.SheetID == "" {
		c.SheetID = defaults.SheetID
	}
	if c.Sheets.Reviews.Name == "" {
		c.Sheets.Reviews.Name = defaults.Sheets.Reviews.Name
	}
	if c.Sheets.Watchlist.Name == "" {
		c.Sheets.Watchlist.Name = defaults.Sheets.Watchlist.Name
	}
	if c.HTTP.BaseURL == "" {
		c.HTTP.BaseURL = defaults.HTTP.BaseURL
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = defaults.HTTP.Timeout
	}
	if c.HTTP.Burst == 0 {
		c.HTTP.Burst = defaults.HTTP.Burst
	}
	if c.Reviews.PageSize == 0 {
		c.Reviews.PageSize = defaults.Reviews.PageSize
	}
	if c.Reviews.RecentCount == 0 {
		c.Reviews.RecentCount = defaults.Reviews.RecentCount
	}
	if c.Reviews.AbsentRating == "" {
		c.Reviews.AbsentRating = defaults.Reviews.AbsentRating
	}
	if c.Reviews.PrimaryName == "" {
		c.Reviews.PrimaryName = defaults.Reviews.PrimaryName
	}
	if c.Reviews.SecondaryName == "" {
		c.Reviews.SecondaryName = defaults.Reviews.SecondaryName
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
}

// TransitionDuration returns the tab fade delay.
func (c *Config) TransitionDuration() time.Duration {
	return time.Duration(c.TUI.TransitionMS) * time.Millisecond
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "reel.log")
}
