// Package bootstrap turns config into wired services shared by the server and the CLI.
package bootstrap

import (
	"log/slog"
	"os"
	"time"

	"github.com/limbo/serenity/internal/companion"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/config"
)

// SetupLogger installs JSON slog handler as default logger.
func SetupLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
	slog.SetDefault(logger)
	return logger
}

func StoreOptions(cfg *config.Config) *repository.StoreOptions {
	return &repository.StoreOptions{
		Driver: cfg.GetString("STORAGE_DRIVER"),
		Postgres: repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		},
		Redis: repository.RedisCfg{
			Address:  cfg.GetString("REDIS_ADDRESS"),
			Password: cfg.GetString("REDIS_PASSWORD"),
			DB:       cfg.GetInt("REDIS_DB"),
		},
		Sqlite: repository.SqliteCfg{
			Path: cfg.GetString("SQLITE_PATH"),
		},
	}
}

// Clock reads wall time in the configured TIMEZONE, so streak days follow it.
func Clock(cfg *config.Config) service.Clock {
	loc := cfg.Location()
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// Collaborators picks LLM-backed responder and classifier when LLM_API_KEY is set.
// Without it everything runs offline on canned replies and keyword scoring.
func Collaborators(cfg *config.Config) (service.Responder, service.MoodClassifier) {
	apiKey := cfg.GetString("LLM_API_KEY")
	if apiKey == "" {
		slog.Info("LLM_API_KEY is empty, companion works offline")
		return companion.CannedResponder{}, companion.KeywordClassifier{}
	}
	client := companion.NewOpenAIClient(&companion.LLMConfig{
		APIKey:  apiKey,
		BaseURL: cfg.GetString("LLM_BASE_URL"),
		Model:   cfg.GetString("LLM_MODEL"),
	})
	return client, companion.FallbackClassifier{
		Primary:   client,
		Secondary: companion.KeywordClassifier{},
	}
}

func Workspaces(cfg *config.Config, store repository.KVStoreI, logger *slog.Logger) *service.Workspaces {
	responder, classifier := Collaborators(cfg)
	return service.NewWorkspaces(service.WorkspaceDeps{
		Store:      store,
		Responder:  responder,
		Classifier: classifier,
		Notifier:   companion.LogNotifier{Logger: logger},
		Clock:      Clock(cfg),
		Logger:     logger,
	})
}
