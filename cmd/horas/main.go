package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"control-horas/internal/cli"
	"control-horas/internal/config"
	"control-horas/internal/logging"
	"control-horas/internal/services"
)

func main() {
	// Optional .env file for local setups; missing files are fine.
	_ = godotenv.Load()

	logging.Setup()

	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The repository and services are wired on first use, once the root
	// command has folded flag overrides into the configuration.
	root := cli.NewRootCommand(cfg, func(ctx context.Context, cfg *config.Config) (*cli.App, error) {
		repo, err := NewRepositoryFactory(cfg).CreateRepository(ctx)
		if err != nil {
			return nil, err
		}
		container := services.NewServiceContainer(cfg, repo, services.SystemClock{})
		return cli.NewApp(container, cfg, repo), nil
	})

	err = root.Execute()
	if closeErr := root.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error closing repository: %v\n", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
