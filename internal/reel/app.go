package reel

import (
	"fmt"

	"github.com/colonyops/reel/internal/core/config"
	"github.com/colonyops/reel/internal/core/logging"
	"github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/internal/core/sheets"
	"github.com/colonyops/reel/internal/core/theme"
	"github.com/colonyops/reel/internal/data/db"
)

// Reviewers holds the display names of the two reviewers.
type Reviewers struct {
	Primary   string
	Secondary string
}

// App is the central entry point for all reel operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Service   *Service
	Themes    theme.Store
	Config    *config.Config
	DB        *db.DB
	Pages     reviews.PageOptions
	Reviewers Reviewers
}

// NewApp constructs an App from the loaded configuration.
func NewApp(cfg *config.Config, themes theme.Store, database *db.DB) (*App, error) {
	policy, err := reviews.ParseAbsentPolicy(cfg.Reviews.AbsentRating)
	if err != nil {
		return nil, fmt.Errorf("reviews.absent_rating: %w", err)
	}

	client := sheets.NewClient(ClientOptions(cfg), logging.Component("sheets"))

	svc := NewService(
		client,
		SheetSource{
			Name:    cfg.Sheets.Reviews.Name,
			Options: sheets.ParseOptions{SkipHeaderRow: cfg.Sheets.Reviews.SkipHeaderRow},
		},
		SheetSource{
			Name:    cfg.Sheets.Watchlist.Name,
			Options: sheets.ParseOptions{SkipHeaderRow: cfg.Sheets.Watchlist.SkipHeaderRow},
		},
		reviews.NewMapper(policy),
		logging.Component("loader"),
	)

	return &App{
		Service: svc,
		Themes:  themes,
		Config:  cfg,
		DB:      database,
		Pages:   PageOptions(cfg),
		Reviewers: Reviewers{
			Primary:   cfg.Reviews.PrimaryName,
			Secondary: cfg.Reviews.SecondaryName,
		},
	}, nil
}

// ClientOptions maps the http and sheet_id settings onto the sheet client.
func ClientOptions(cfg *config.Config) sheets.ClientOptions {
	return sheets.ClientOptions{
		BaseURL:     cfg.HTTP.BaseURL,
		SheetID:     cfg.SheetID,
		Timeout:     cfg.HTTP.Timeout,
		MinInterval: cfg.HTTP.MinInterval,
		Burst:       cfg.HTTP.Burst,
	}
}

// PageOptions maps the reviews settings onto the query engine.
func PageOptions(cfg *config.Config) reviews.PageOptions {
	return reviews.PageOptions{
		PageSize:    cfg.Reviews.PageSize,
		ShowRecent:  cfg.Reviews.ShowRecent,
		RecentCount: cfg.Reviews.RecentCount,
		SearchOnly:  cfg.Reviews.SearchOnly,
	}
}
