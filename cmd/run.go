package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/timesdrill/internal/app"
	"github.com/abhisek/timesdrill/internal/config"
	"github.com/abhisek/timesdrill/internal/diagnosis"
	"github.com/abhisek/timesdrill/internal/i18n"
	"github.com/abhisek/timesdrill/internal/logger"
	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/store"
)

// env holds what the commands share: configuration, logging, the message
// printer and, once opened, the store.
type env struct {
	cfg      *config.Config
	log      *logger.Logger
	printer  *i18n.Printer
	profiles map[quizgen.Level]quizgen.DifficultyProfile
	store    *store.Store
}

// loadEnv reads configuration and applies the persistent flags on top.
func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if l, _ := cmd.Flags().GetString("locale"); l != "" {
		cfg.Locale = l
	}
	if p, _ := cmd.Flags().GetString("profiles"); p != "" {
		cfg.ProfilesPath = p
	}

	profiles, err := cfg.Profiles()
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file. Without one the app
	// still runs.
	log := logger.NewNop()
	if err := store.EnsureDir(cfg.LogFile); err == nil {
		if l, err := logger.New(cfg.LogMode, cfg.LogFile); err == nil {
			log = l
		} else {
			fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		}
	}

	return &env{
		cfg:      cfg,
		log:      log,
		printer:  i18n.New(i18n.Match(cfg.Locale)),
		profiles: profiles,
	}, nil
}

// openStore opens the database named by --db or the configuration.
func (e *env) openStore(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd, e.cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	e.store = st
	e.log.Debug("store opened", "path", dbPath)
	return nil
}

func (e *env) profile(level quizgen.Level) quizgen.DifficultyProfile {
	if p, ok := e.profiles[level]; ok {
		return p
	}
	return quizgen.DefaultProfile(level)
}

// deps builds the screen dependencies. openStore must have succeeded.
func (e *env) deps() *screen.Deps {
	events := e.store.EventRepo()
	return &screen.Deps{
		Generator:  quizgen.New(),
		Profiles:   e.profiles,
		Events:     events,
		Stats:      e.store.StatsRepo(),
		Diagnosis:  diagnosis.NewService(events),
		Printer:    e.printer,
		Logger:     e.log,
		GenTimeout: e.cfg.GenTimeout,
	}
}

func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.log.Warn("close store", "error", err)
		}
	}
	e.log.Sync()
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, opts app.Options) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()
	if err := e.openStore(cmd); err != nil {
		return err
	}
	return runWith(e, opts)
}

func runWith(e *env, opts app.Options) error {
	e.log.Info("starting",
		"locale", e.printer.Tag().String(),
		"auto_start", opts.AutoStart,
		"replay", len(opts.Questions))
	return app.Run(e.deps(), opts)
}
