package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/yanqian/wellness-tips/internal/infra/config"
	"github.com/yanqian/wellness-tips/pkg/logger"
)

func main() {
	log := logger.New().With("component", "migrate")

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	dsn := strings.TrimSpace(cfg.Storage.Postgres.DSN)
	if dsn == "" {
		log.Error("POSTGRES_DSN (storage.postgres.dsn) is required")
		os.Exit(1)
	}

	dir, err := resolveMigrationsDir()
	if err != nil {
		log.Error("migrations directory not found", "error", err)
		os.Exit(1)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), dsn)
	if err != nil {
		log.Error("failed to initialize migrations", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Error("failed to read version", "error", verr)
			os.Exit(1)
		}
		log.Info("schema version", "version", version, "dirty", dirty)
		return
	default:
		log.Error("unknown command, expected up, down or version", "command", cmd)
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error("migration failed", "command", cmd, "error", err)
		os.Exit(1)
	}
	log.Info("migration finished", "command", cmd, "dir", dir)
}

// resolveMigrationsDir honours MIGRATIONS_DIR, then searches upward from the
// working directory and next to the executable.
func resolveMigrationsDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")); dir != "" {
		return filepath.Abs(dir)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	candidates := migrationCandidates(cwd, 6)
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(exeDir, "migrations"),
			filepath.Join(exeDir, "..", "migrations"),
		)
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Abs(candidate)
		}
	}
	return "", fmt.Errorf("searched %d locations", len(candidates))
}

func migrationCandidates(start string, depth int) []string {
	candidates := make([]string, 0, depth)
	current := start
	for i := 0; i < depth; i++ {
		candidates = append(candidates, filepath.Join(current, "migrations"))
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return candidates
}
