package app

import (
	"context"
	"time"

	"skillseeker/internal/config"
	"skillseeker/internal/database"
	"skillseeker/internal/database/migration"
	dbpostgres "skillseeker/internal/database/postgres"
	"skillseeker/internal/infrastructure/cache"
	"skillseeker/internal/pkg/logger"
	"skillseeker/internal/ws"
)

// Container holds the process-wide dependencies. It owns their lifecycle:
// NewContainer connects everything, Close releases it in reverse order.
type Container struct {
	Config config.Config
	Log    *logger.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
}

func NewContainer(cfg config.Config, log *logger.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, log),
		Hub:    ws.NewHub(log),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
