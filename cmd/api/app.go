package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"simplecrm/cmd/internal/config"
	"simplecrm/cmd/internal/domain/policy"
	"simplecrm/cmd/internal/domain/sqlite/repository"
	"simplecrm/cmd/internal/http/handler"
	crmmiddleware "simplecrm/cmd/internal/http/middleware"
	"simplecrm/cmd/internal/infrastructure/aws/storage"
	"simplecrm/cmd/internal/infrastructure/filesystem"
	"simplecrm/cmd/internal/service"
	"simplecrm/cmd/internal/service/jobs"
	"simplecrm/cmd/internal/utils/validators"
)

type app struct {
	echo      *echo.Echo
	refresher *jobs.StatusRefresher
}

func newArtifactChecker(ctx context.Context, cfg *config.Config) (policy.ArtifactChecker, error) {
	if cfg.ArtifactBackend == config.BackendS3 {
		log.Infof("checking signed documents in s3://%s", cfg.S3Bucket)
		return storage.NewArtifactStore(ctx, cfg.S3Region, cfg.S3Bucket)
	}

	log.Infof("checking signed documents below %s", cfg.ArtifactDir)
	return filesystem.NewArtifactStore(cfg.ArtifactDir), nil
}

// newApp wires repositories, services and routes on top of db.
func newApp(ctx context.Context, cfg *config.Config, db *gorm.DB) (*app, error) {
	artifacts, err := newArtifactChecker(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return buildApp(cfg, db, policy.NewStatusPolicy(artifacts, nil)), nil
}

func buildApp(cfg *config.Config, db *gorm.DB, status *policy.StatusPolicy) *app {
	validate := validators.New()

	// Repositories
	clientTypeRepo := repository.NewClientTypeRepository(db)
	clientRepo := repository.NewClientRepository(db)
	executorRepo := repository.NewExecutorRepository(db)
	contractRepo := repository.NewSampleContractRepository(db)
	attachRepo := repository.NewSampleAttachRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	dealRepo := repository.NewDealRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	// Services
	clientTypeService := service.NewClientTypeService(clientTypeRepo, validate)
	partyService := service.NewPartyService(clientRepo, executorRepo, clientTypeRepo, validate)
	templateService := service.NewTemplateService(contractRepo, attachRepo, serviceRepo, validate)
	dealService := service.NewDealService(dealRepo, clientRepo, executorRepo, validate)
	attachmentService := service.NewAttachmentService(attachmentRepo, dealRepo, serviceRepo, status, validate)

	routes := &handler.Routes{
		ClientTypes: handler.NewClientTypeRoute(clientTypeService),
		Parties:     handler.NewPartyRoute(partyService),
		Templates:   handler.NewTemplateRoute(templateService),
		Deals:       handler.NewDealRoute(dealService, attachmentService),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(crmmiddleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(crmmiddleware.Metrics())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	routes.Register(e)

	return &app{
		echo:      e,
		refresher: jobs.NewStatusRefresher(attachmentService, cfg.StatusRefreshInterval),
	}
}
