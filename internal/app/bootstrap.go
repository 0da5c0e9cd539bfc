package app

import (
	"fmt"
	"strings"

	"skillseeker/internal/config"
	"skillseeker/internal/delivery/http/middleware"
	"skillseeker/internal/delivery/http/routes"
	"skillseeker/internal/pkg/logger"
	"skillseeker/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap connects infrastructure, wires routes and returns the app
// along with a cleanup func releasing everything Bootstrap acquired.
func Bootstrap(cfg config.Config, log *logger.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	go container.Hub.Run()
	ws.SetDefaultHub(container.Hub)

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	f.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	f.Use(middleware.NewErrorMiddleware(log).Middleware())

	registry := routes.NewRegistry(routes.Deps{
		Config: cfg,
		DB:     container.DB,
		Cache:  container.Cache,
		Hub:    container.Hub,
		Log:    log,
	})
	registry.Register(f)

	cleanup := func() error {
		ws.SetDefaultHub(nil)
		return container.Close()
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
