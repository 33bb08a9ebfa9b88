package cmd

import (
	"log/slog"
	"time"

	"tracker/internal/adapters/out/auth"
	"tracker/internal/adapters/out/kafka"
	"tracker/internal/adapters/out/postgres"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/ports"
	"tracker/internal/jobs"

	"gorm.io/gorm"
)

const defaultTokenTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	publisher     ports.EventPublisher
	tokenProvider ports.TokenProvider
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	tokenTTL := defaultTokenTTL
	if config.JWTTokenTTL != "" {
		if parsed, err := time.ParseDuration(config.JWTTokenTTL); err == nil {
			tokenTTL = parsed
		}
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher: kafka.NewShipmentEventPublisher(
			[]string{config.KafkaHost}, config.KafkaShipmentTopic),
		tokenProvider: auth.NewJWTTokenProvider(
			config.JWTSecret, config.AdminUsername, config.AdminPasswordHash, tokenTTL),
		logger: logger,
	}
}

func (c *CompositionRoot) TokenProvider() ports.TokenProvider {
	return c.tokenProvider
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteShipmentCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByTrackingNumberQueryHandler() queries.GetShipmentByTrackingNumberQueryHandler {
	return queries.NewGetShipmentByTrackingNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsByStatusQueryHandler() queries.GetShipmentsByStatusQueryHandler {
	return queries.NewGetShipmentsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueShipmentsQueryHandler() queries.GetOverdueShipmentsQueryHandler {
	return queries.NewGetOverdueShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueShipmentsQueryHandler(), c.logger)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
