package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
	"github.com/yanqian/wellness-tips/internal/domain/settings"
	"github.com/yanqian/wellness-tips/internal/domain/wellness"
	"github.com/yanqian/wellness-tips/internal/infra/config"
	"github.com/yanqian/wellness-tips/internal/infra/llm/chatgpt"
	"github.com/yanqian/wellness-tips/internal/infra/llm/gemini"
	"github.com/yanqian/wellness-tips/internal/infra/profilerepo"
	"github.com/yanqian/wellness-tips/internal/infra/settingsstore"
	"github.com/yanqian/wellness-tips/internal/infra/sqlitedb"
	"github.com/yanqian/wellness-tips/internal/infra/tiprepo"
	"github.com/yanqian/wellness-tips/internal/infra/translate/google"
)

// storageBackend pairs the tip and profile repositories of one driver.
type storageBackend struct {
	tips     wellness.TipRepository
	profiles profile.Repository
}

func memoryBackend() *storageBackend {
	return &storageBackend{
		tips:     tiprepo.NewMemoryRepository(),
		profiles: profilerepo.NewMemoryRepository(),
	}
}

func provideStorage(cfg *config.Config, logger *slog.Logger) (*storageBackend, func(), error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		db, err := sqlitedb.Open(ctx, cfg.Storage.SQLite.Path)
		if err != nil {
			logger.Error("failed to open sqlite database, using memory repositories", "path", cfg.Storage.SQLite.Path, "error", err)
			return memoryBackend(), noop, nil
		}
		logger.Info("sqlite repositories enabled", "path", cfg.Storage.SQLite.Path)
		return &storageBackend{
			tips:     tiprepo.NewSQLiteRepository(db),
			profiles: profilerepo.NewSQLiteRepository(db),
		}, func() { _ = db.Close() }, nil
	case config.DriverPostgres:
		pool := openPostgres(cfg.Storage.Postgres, logger)
		if pool == nil {
			return memoryBackend(), noop, nil
		}
		logger.Info("postgres repositories enabled")
		return &storageBackend{
			tips:     tiprepo.NewPostgresRepository(pool),
			profiles: profilerepo.NewPostgresRepository(pool),
		}, pool.Close, nil
	default:
		logger.Info("using memory repositories")
		return memoryBackend(), noop, nil
	}
}

// openPostgres returns nil when the pool cannot be used.
func openPostgres(cfg config.PostgresConfig, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	return pool
}

func provideTipRepository(backend *storageBackend) wellness.TipRepository {
	return backend.tips
}

func provideProfileRepository(backend *storageBackend) profile.Repository {
	return backend.profiles
}

func provideProfileReader(repo profile.Repository) wellness.ProfileReader {
	return repo
}

func provideSettingsConfig(cfg *config.Config) settings.Config {
	return settings.Config{DefaultLanguage: cfg.Settings.DefaultLanguage}
}

func provideLanguageSettings(svc settings.Service) wellness.LanguageSettings {
	return svc
}

func provideSettingsStore(cfg *config.Config, logger *slog.Logger) settings.Store {
	if cfg.Settings.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg.Settings.Redis.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return settingsstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return settingsstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("settings valkey store enabled", "addr", cfg.Settings.Redis.Addr)
			return settingsstore.NewValkeyStore(client, cfg.Settings.Redis.Prefix)
		}
	}
	return settingsstore.NewMemoryStore()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideWellnessConfig(cfg *config.Config) wellness.Config {
	return wellness.Config{
		Temperature:     cfg.LLM.Temperature,
		TopK:            cfg.LLM.TopK,
		TopP:            cfg.LLM.TopP,
		MaxOutputTokens: cfg.LLM.MaxOutputTokens,
	}
}

func provideGenerator(cfg *config.Config, logger *slog.Logger) wellness.Generator {
	if cfg.LLM.Provider == config.ProviderOpenAI {
		client, err := chatgpt.NewClient(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.BaseURL, cfg.LLM.Timeout)
		if err == nil {
			logger.Info("openai generator enabled", "model", cfg.LLM.OpenAI.Model)
			return chatgpt.NewGenerator(client, cfg.LLM.OpenAI.Model)
		}
		logger.Error("openai generator unavailable, using gemini", "error", err)
	}
	if strings.TrimSpace(cfg.LLM.Gemini.APIKey) == "" {
		logger.Warn("gemini api key not set, generation will serve fallback tips")
	}
	return gemini.NewClient(cfg.LLM.Gemini.APIKey, cfg.LLM.Gemini.BaseURL, cfg.LLM.Gemini.Model, cfg.LLM.Timeout)
}

func provideTranslator(cfg *config.Config) wellness.Translator {
	return google.NewClient(cfg.Translation.APIKey, cfg.Translation.BaseURL, cfg.Translation.Timeout)
}
