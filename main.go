package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/reel/internal/commands"
	"github.com/colonyops/reel/internal/core/config"
	"github.com/colonyops/reel/internal/core/logging"
	"github.com/colonyops/reel/internal/core/styles"
	"github.com/colonyops/reel/internal/core/theme"
	"github.com/colonyops/reel/internal/data/db"
	"github.com/colonyops/reel/internal/data/stores"
	"github.com/colonyops/reel/internal/printer"
	"github.com/colonyops/reel/internal/reel"
	"github.com/colonyops/reel/internal/tui"
	"github.com/colonyops/reel/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() reads
	// runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() tui.BuildInfo {
	b := tui.BuildInfo{Version: version, Commit: commit, Date: date}
	if b.Version != "dev" {
		return b
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			b.Version = mv
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				b.Commit = s.Value
			case "vcs.time":
				b.Date = s.Value
			}
		}
	}
	return b
}

// openDatabase opens the preference database, moving a corrupt file aside
// and starting fresh when needed.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	opts := db.OpenOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		BusyTimeout:  cfg.Database.BusyTimeout,
	}

	database, err := db.Open(cfg.DataDir, opts)
	if err == nil || !stores.IsCorruptionError(err) {
		return database, err
	}

	log.Warn().Err(err).Str("data_dir", cfg.DataDir).Msg("preference database corrupt, starting fresh")
	if rerr := stores.RecoverFromCorruption(cfg.DataDir); rerr != nil {
		return nil, fmt.Errorf("recover database: %w", rerr)
	}
	return db.Open(cfg.DataDir, opts)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		reelApp   = &reel.App{}
		database  *db.DB
		info      = build()
	)

	flags := &commands.Flags{}

	app := commands.NewRoot(flags)
	app.Version = fmt.Sprintf("%s %s", info.Short(), info.Date)
	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
		if err != nil {
			return ctx, fmt.Errorf("load config: %w", err)
		}
		flags.Config = cfg

		// The terminal belongs to the TUI, so logs always go to a file.
		logFile := flags.LogFile
		if logFile == "" {
			logFile = cfg.LogFile()
		}
		logger, closer, err := logutils.New(flags.LogLevel, logFile, logging.ContextHook{})
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger
		logCloser = closer

		database, err = openDatabase(cfg)
		if err != nil {
			return ctx, fmt.Errorf("open database: %w", err)
		}

		themes := stores.NewThemeStore(stores.NewPrefStore(database))
		current, err := theme.Load(ctx, themes)
		if err != nil {
			log.Warn().Err(err).Msg("failed to read saved theme")
			current = theme.Default
		}
		styles.Apply(current)

		// Commands already hold a pointer to the App.
		built, err := reel.NewApp(cfg, themes, database)
		if err != nil {
			return ctx, err
		}
		*reelApp = *built

		return printer.NewContext(ctx, printer.New(os.Stdout)), nil
	}
	app.After = func(ctx context.Context, c *cli.Command) error {
		if database != nil {
			if err := database.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close database")
				return err
			}
		}

		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	app = commands.RegisterAll(app, flags, reelApp, info)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
