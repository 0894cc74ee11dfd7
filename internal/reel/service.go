// Package reel wires the sheet client, record mapper and preference stores
// into the services consumed by commands and the TUI.
package reel

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/colonyops/reel/internal/core/logging"
	"github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/internal/core/sheets"
)

// Fetcher retrieves a parsed sheet.
type Fetcher interface {
	FetchTable(ctx context.Context, sheet string, opts sheets.ParseOptions) (sheets.Table, error)
}

// SheetSource names a sheet tab and how to parse it.
type SheetSource struct {
	Name    string
	Options sheets.ParseOptions
}

// LoadResult carries the outcome of both fetches. Each half succeeds or fails
// on its own.
type LoadResult struct {
	Reviews      reviews.Collection
	ReviewsErr   error
	Watchlist    []reviews.WatchlistEntry
	WatchlistErr error
}

// Service loads the review and watchlist sheets.
type Service struct {
	fetcher   Fetcher
	reviews   SheetSource
	watchlist SheetSource
	mapper    reviews.Mapper
	log       zerolog.Logger
}

// NewService creates a Service.
func NewService(fetcher Fetcher, reviewSheet, watchlistSheet SheetSource, mapper reviews.Mapper, log zerolog.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		reviews:   reviewSheet,
		watchlist: watchlistSheet,
		mapper:    mapper,
		log:       log,
	}
}

// FetchReviews fetches and maps the review sheet.
func (s *Service) FetchReviews(ctx context.Context) (reviews.Collection, error) {
	table, err := s.fetch(ctx, s.reviews)
	if err != nil {
		return reviews.Collection{}, fmt.Errorf("fetch reviews: %w", err)
	}
	return s.mapper.Collection(table), nil
}

// FetchWatchlist fetches and maps the watchlist sheet.
func (s *Service) FetchWatchlist(ctx context.Context) ([]reviews.WatchlistEntry, error) {
	table, err := s.fetch(ctx, s.watchlist)
	if err != nil {
		return nil, fmt.Errorf("fetch watchlist: %w", err)
	}
	return s.mapper.WatchlistEntries(table), nil
}

// Load fetches both sheets concurrently. A failure in one never cancels the
// other.
func (s *Service) Load(ctx context.Context) LoadResult {
	var (
		res LoadResult
		g   errgroup.Group
	)

	g.Go(func() error {
		res.Reviews, res.ReviewsErr = s.FetchReviews(ctx)
		return nil
	})
	g.Go(func() error {
		res.Watchlist, res.WatchlistErr = s.FetchWatchlist(ctx)
		return nil
	})
	_ = g.Wait()

	return res
}

func (s *Service) fetch(ctx context.Context, src SheetSource) (sheets.Table, error) {
	ctx = logging.WithSheet(ctx, src.Name)
	start := time.Now()

	table, err := s.fetcher.FetchTable(ctx, src.Name, src.Options)
	if err != nil {
		logging.Failure(&s.log, err, sheets.Kind(err)).Ctx(ctx).Msg("sheet load failed")
		return sheets.Table{}, err
	}

	s.log.Info().Ctx(ctx).
		Int("rows", len(table.Rows)).
		Dur("elapsed", time.Since(start)).
		Msg("sheet loaded")
	return table, nil
}
