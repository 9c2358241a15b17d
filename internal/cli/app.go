// Package cli wires the uibridge commands to the bridge and its infrastructure.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bnema/uibridge/internal/cli/styles"
	"github.com/bnema/uibridge/internal/domain/build"
	"github.com/bnema/uibridge/internal/domain/repository"
	"github.com/bnema/uibridge/internal/infrastructure/config"
	"github.com/bnema/uibridge/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/uibridge/internal/logging"
)

const dataDirPerm = 0o755

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db      *sqlite.LazyDB
	journal repository.JournalRepository

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration at configPath (empty means the XDG file)
// and builds a stderr logger from it.
func NewApp(configPath string) (*App, error) {
	mgr, err := config.NewManager(configPath)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	// Loggers are built wide open; the global level does the filtering so a
	// config reload can change it.
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	logger := logging.New(logging.Config{
		Level:      zerolog.TraceLevel,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})

	app := &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: func() {},
	}
	mgr.OnConfigChange(app.applyLogLevel)
	return app, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// UseFileLog moves logging to the rotating log file. Commands that draw on
// the terminal call it before taking the screen over.
func (a *App) UseFileLog() (string, error) {
	cfg := a.Config.Logging
	logger, cleanup, err := logging.NewWithFile(
		logging.Config{Level: zerolog.TraceLevel, Format: cfg.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:    true,
			LogDir:     cfg.LogDir,
			MaxSizeMB:  cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAgeDays: cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
	)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}

	a.logCleanup()
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(a.ctx, logger)
	return filepath.Join(cfg.LogDir, "uibridge.log"), nil
}

// Journal returns the event journal. The database is opened on first use.
func (a *App) Journal() repository.JournalRepository {
	if a.journal == nil {
		a.db = sqlite.NewLazyDB(a.Config.Journal.Path)
		a.journal = sqlite.NewLazyJournalRepository(a.db)
	}
	return a.journal
}

// EnsureJournalDir creates the directory holding the journal database.
func (a *App) EnsureJournalDir() error {
	if err := os.MkdirAll(filepath.Dir(a.Config.Journal.Path), dataDirPerm); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return errors.Join(errs...)
}

func (a *App) applyLogLevel(cfg *config.Config) {
	level := logging.ParseLevel(cfg.Logging.Level)
	if level == zerolog.GlobalLevel() {
		return
	}
	zerolog.SetGlobalLevel(level)
	logging.FromContext(a.ctx).Info().Str("level", level.String()).Msg("log level changed")
}
