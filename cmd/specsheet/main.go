package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bvanleeuwen/specsheet/internal/cli"
	"github.com/bvanleeuwen/specsheet/internal/config"
	"github.com/bvanleeuwen/specsheet/internal/db"
	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/bvanleeuwen/specsheet/internal/report"
	"github.com/bvanleeuwen/specsheet/internal/repository"
	"github.com/bvanleeuwen/specsheet/internal/service"
	"github.com/bvanleeuwen/specsheet/internal/tracker"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := newLogger()

	// DB path: env var or default ~/.specsheet/specsheet.db
	dbPath := os.Getenv("SPECSHEET_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".specsheet", "specsheet.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	settings, err := config.Load(os.Getenv("SPECSHEET_CONFIG"))
	if err != nil {
		return err
	}
	checklist, err := config.LoadChecklist(os.Getenv("SPECSHEET_CHECKLIST"))
	if err != nil {
		return err
	}

	memberRepo := repository.NewSQLiteMemberRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)

	// Tracker credentials are only required for plan/quote/report; team
	// and holiday management stay usable without them.
	var backlog service.BacklogSource
	if trackerCfg, trackerErr := config.LoadTracker(); trackerErr == nil {
		backlog = tracker.NewClient(trackerCfg, log)
	} else {
		backlog = unconfiguredBacklog{err: trackerErr}
	}

	planSvc, err := service.NewPlanService(settings, checklist, memberRepo, holidayRepo, backlog, log)
	if err != nil {
		return err
	}

	app := &cli.App{
		Team:        service.NewTeamService(memberRepo, log),
		Holidays:    service.NewHolidayService(memberRepo, holidayRepo, tracker.NewHolidayClient(log), log),
		Plan:        planSvc,
		Report:      report.NewGenerator(),
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if parsed, err := zerolog.ParseLevel(os.Getenv("SPECSHEET_LOG_LEVEL")); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// unconfiguredBacklog defers the tracker configuration error until a
// command actually needs the backlog.
type unconfiguredBacklog struct {
	err error
}

func (u unconfiguredBacklog) FetchBacklog(ctx context.Context) (domain.Backlog, error) {
	return nil, u.err
}
