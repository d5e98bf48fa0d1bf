package settings

import (
	"context"
	"log/slog"

	apperrors "github.com/yanqian/wellness-tips/pkg/errors"
)

// Store persists the selected display language.
type Store interface {
	GetLanguage(ctx context.Context) (string, bool, error)
	SetLanguage(ctx context.Context, code string) error
}

// Config carries the default used before any language has been chosen.
type Config struct {
	DefaultLanguage string
}

// Service owns the process-wide settings.
type Service interface {
	Language(ctx context.Context) (Language, error)
	SetLanguage(ctx context.Context, code string) (Language, error)
	Supported() []LanguageOption
}

type service struct {
	cfg    Config
	store  Store
	logger *slog.Logger
}

// NewService wires the settings domain.
func NewService(cfg Config, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		store:  store,
		logger: logger.With("component", "settings.service"),
	}
}

func (s *service) Language(ctx context.Context) (Language, error) {
	code, ok, err := s.store.GetLanguage(ctx)
	if err != nil {
		return "", apperrors.Wrap("settings_error", "failed to load language setting", err)
	}
	if !ok {
		return Normalize(s.cfg.DefaultLanguage), nil
	}
	return Normalize(code), nil
}

func (s *service) SetLanguage(ctx context.Context, code string) (Language, error) {
	lang := Normalize(code)
	if !IsSupported(code) {
		s.logger.Warn("unsupported language requested, using english", "requested", code)
	}
	if err := s.store.SetLanguage(ctx, lang.String()); err != nil {
		return "", apperrors.Wrap("settings_error", "failed to save language setting", err)
	}
	s.logger.Info("language updated", "language", lang)
	return lang, nil
}

func (s *service) Supported() []LanguageOption {
	return Supported()
}
