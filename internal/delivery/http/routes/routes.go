package routes

import (
	"skillseeker/internal/config"
	"skillseeker/internal/database"
	"skillseeker/internal/delivery/http/handler"
	"skillseeker/internal/pkg/logger"
	"skillseeker/internal/usecase"
	"skillseeker/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps is everything route registration needs from the container.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.StatsCache
	Hub    *ws.Hub
	Log    *logger.Logger
}

type Registry struct {
	deps   Deps
	health *handler.HealthHandler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps, health: handler.NewHealthHandler(deps.DB)}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
