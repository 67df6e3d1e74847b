package app

import (
	"context"

	"maestro/config"
	"maestro/internal/controllers"
	"maestro/internal/database"
	"maestro/internal/handlers/middleware"
	"maestro/internal/jobs"
	"maestro/internal/repositories"
	"maestro/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Services
	OIDCService        *services.OIDCService
	SpotifyService     *services.SpotifyService
	TokenBrokerService *services.TokenBrokerService
	InferenceService   *services.InferenceService
	SchedulerService   *services.SchedulerService

	// Repositories
	Repos repositories.Repository

	// Controllers
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)

	service, err := services.New(config, repos)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	middleware := middleware.New(db, config, repos)
	controllers := controllers.New(service, repos, config)

	// Register jobs with scheduler if enabled
	if config.SchedulerEnabled {
		tokenCleanupJob := jobs.NewTokenCleanupJob(service.TokenBroker, services.Daily)
		if err := service.Scheduler.AddJob(tokenCleanupJob); err != nil {
			return &App{}, log.Err("failed to register token cleanup job", err)
		}
		log.Info("Registered token cleanup job with scheduler")
	}

	app := &App{
		Database:           db,
		Middleware:         middleware,
		Config:             config,
		OIDCService:        service.OIDC,
		SpotifyService:     service.Spotify,
		TokenBrokerService: service.TokenBroker,
		InferenceService:   service.Inference,
		SchedulerService:   service.Scheduler,
		Repos:              repos,
		Controllers:        controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	service.Scheduler.Start()

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.OIDCService,
		a.SpotifyService,
		a.TokenBrokerService,
		a.InferenceService,
		a.SchedulerService,
		a.Repos.User,
		a.Repos.ProviderToken,
		a.Repos.ProviderTrack,
		a.Repos.ProviderAlbum,
		a.Repos.ProviderArtist,
		a.Repos.Composer,
		a.Repos.Work,
		a.Repos.Movement,
		a.Repos.TrackMovement,
		a.Controllers.Reconciliation,
		a.Controllers.Catalog,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.SchedulerService != nil {
		if closeErr := a.SchedulerService.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
