package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/pkg/entity"
)

const (
	OnboardingCompletedKey  = "onboarding_completed"
	NotificationsEnabledKey = "notifications_enabled"
)

type SettingsService struct {
	kv     repository.KVStoreI
	logger *slog.Logger
}

func NewSettingsService(kv repository.KVStoreI, logger *slog.Logger) *SettingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsService{
		kv:     kv,
		logger: logger.With(slog.String("component", "settings")),
	}
}

// Get reads both toggles. Unreadable values count as disabled.
func (ss *SettingsService) Get(ctx context.Context) entity.Settings {
	var settings entity.Settings
	var err error
	if settings.OnboardingCompleted, err = repository.LoadBool(ctx, ss.kv, OnboardingCompletedKey); err != nil {
		ss.logger.Error("loading onboarding flag failed", slog.String("error", err.Error()))
	}
	if settings.NotificationsEnabled, err = repository.LoadBool(ctx, ss.kv, NotificationsEnabledKey); err != nil {
		ss.logger.Error("loading notifications flag failed", slog.String("error", err.Error()))
	}
	return settings
}

func (ss *SettingsService) Update(ctx context.Context, settings entity.Settings) error {
	err := ss.kv.SetMany(ctx, map[string]string{
		OnboardingCompletedKey:  repository.FormatBool(settings.OnboardingCompleted),
		NotificationsEnabledKey: repository.FormatBool(settings.NotificationsEnabled),
	})
	if err != nil {
		return errors.New("saving settings error: " + err.Error())
	}
	return nil
}
