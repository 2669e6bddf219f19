package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/meridian/internal/cli"
	"github.com/alexanderramin/meridian/internal/config"
	"github.com/alexanderramin/meridian/internal/db"
	"github.com/alexanderramin/meridian/internal/httpapi"
	"github.com/alexanderramin/meridian/internal/repository"
	"github.com/alexanderramin/meridian/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := cfg.Logger(os.Stderr)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	profileRepo := repository.NewSQLiteProfileRepo(database)
	healthRepo := repository.NewSQLiteHealthLogRepo(database)
	looksRepo := repository.NewSQLiteLooksLogRepo(database)
	routineRepo := repository.NewSQLiteRoutineLogRepo(database)
	weightRepo := repository.NewSQLiteWeightRepo(database)
	calibrationRepo := repository.NewSQLiteCalibrationRepo(database)
	snapshotRepo := repository.NewSQLitePlanSnapshotRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	plans := service.NewPlanService(service.PlanRepos{
		Profiles:     profileRepo,
		Health:       healthRepo,
		Looks:        looksRepo,
		Routine:      routineRepo,
		Weights:      weightRepo,
		Calibrations: calibrationRepo,
		Snapshots:    snapshotRepo,
	}, cfg.WeightSamples, logger, observers...)
	adaptation := service.NewAdaptationService(profileRepo, healthRepo, weightRepo, calibrationRepo, nil, cfg.WeightSamples, observers...)
	calibration := service.NewCalibrationService(profileRepo, weightRepo, calibrationRepo, uow, observers...)

	api := httpapi.NewHandler(plans, adaptation, calibration, httpapi.Config{
		ProfileID:  cfg.ProfileID,
		WindowDays: cfg.WindowDays,
		Logger:     logger,
	})

	app := &cli.App{
		Profiles:    service.NewProfileService(profileRepo, observers...),
		Logs:        service.NewLogService(profileRepo, healthRepo, looksRepo, routineRepo, weightRepo, observers...),
		Plans:       plans,
		Adaptation:  adaptation,
		Calibration: calibration,
		ProfileID:   cfg.ProfileID,
		WindowDays:  cfg.WindowDays,
		HTTPAddr:    cfg.HTTPAddr,
		Serve:       api.ListenAndServe,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
