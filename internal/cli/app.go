package cli

import (
	"context"

	"control-horas/internal/config"
	"control-horas/internal/repository"
	"control-horas/internal/services"
)

// App bundles the wired services the command handlers run against.
type App struct {
	services *services.ServiceContainer
	config   *config.Config
	repo     repository.Repository
}

// NewApp creates a CLI application instance over an already wired service
// container.
func NewApp(container *services.ServiceContainer, cfg *config.Config, repo repository.Repository) *App {
	return &App{
		services: container,
		config:   cfg,
		repo:     repo,
	}
}

// LoadSession populates the session collection from storage. Read failures
// are recovered inside the session service.
func (a *App) LoadSession(ctx context.Context) {
	a.services.SessionService.Load(ctx)
}

// Close releases the underlying repository.
func (a *App) Close() error {
	return a.repo.Close()
}
