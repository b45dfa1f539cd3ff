package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"control-horas/internal/config"
	"control-horas/internal/repository/sqlite"
	"control-horas/internal/services"
)

// setupTestApp wires a full application over a temporary database.
func setupTestApp(t *testing.T) *App {
	t.Helper()

	cfg := config.NewConfig()
	cfg.Database.Dir = t.TempDir()

	repo, err := sqlite.New(filepath.Join(cfg.Database.Dir, cfg.Database.Filename))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})

	container := services.NewServiceContainer(cfg, repo, services.SystemClock{})
	return NewApp(container, cfg, repo)
}
