package main

import (
	"context"
	"fmt"
	"os"

	"control-horas/internal/config"
	"control-horas/internal/repository"
	"control-horas/internal/repository/postgres"
	"control-horas/internal/repository/sqlite"
)

// RepositoryFactory creates repository instances for the configured backend
type RepositoryFactory struct {
	config *config.Config
}

// NewRepositoryFactory creates a new repository factory for the given configuration
func NewRepositoryFactory(cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{config: cfg}
}

// CreateRepository creates a repository instance for the configured backend
func (rf *RepositoryFactory) CreateRepository(ctx context.Context) (repository.Repository, error) {
	switch rf.config.Database.Backend {
	case config.BackendPostgres:
		return rf.createPostgresRepository(ctx)
	case config.BackendSQLite:
		return rf.createSQLiteRepository()
	default:
		return rf.createSQLiteRepository()
	}
}

// createSQLiteRepository opens the local database, creating the data
// directory when missing
func (rf *RepositoryFactory) createSQLiteRepository() (repository.Repository, error) {
	if err := os.MkdirAll(rf.config.Database.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo, err := sqlite.New(rf.config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local database: %w", err)
	}
	return repo, nil
}

// createPostgresRepository connects to the remote collection
func (rf *RepositoryFactory) createPostgresRepository(ctx context.Context) (repository.Repository, error) {
	if rf.config.Database.URL == "" {
		return nil, fmt.Errorf("postgres backend requires DATABASE_URL")
	}

	repo, err := postgres.New(ctx, rf.config.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to remote database: %w", err)
	}
	return repo, nil
}
