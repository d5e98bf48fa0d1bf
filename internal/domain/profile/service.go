package profile

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/yanqian/wellness-tips/pkg/errors"
	"github.com/yanqian/wellness-tips/pkg/util"
)

// Repository stores the singleton profile.
type Repository interface {
	Get(ctx context.Context) (UserProfile, bool, error)
	Save(ctx context.Context, p UserProfile) error
	Delete(ctx context.Context) error
}

// Service exposes profile management.
type Service interface {
	Get(ctx context.Context) (UserProfile, error)
	Save(ctx context.Context, p UserProfile) (UserProfile, error)
	Delete(ctx context.Context) error
	Exists(ctx context.Context) (bool, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires the profile domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "profile.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Get(ctx context.Context) (UserProfile, error) {
	p, ok, err := s.repo.Get(ctx)
	if err != nil {
		return UserProfile{}, apperrors.Wrap("storage_error", "failed to load profile", err)
	}
	if !ok {
		return UserProfile{}, apperrors.Wrap("not_found", "profile not found", nil)
	}
	return p, nil
}

func (s *service) Save(ctx context.Context, p UserProfile) (UserProfile, error) {
	p = Normalize(p)
	if err := Validate(p); err != nil {
		s.logger.Warn("profile rejected", "error", err)
		return UserProfile{}, err
	}
	p.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, p); err != nil {
		return UserProfile{}, apperrors.Wrap("storage_error", "failed to save profile", err)
	}
	s.logger.Info("profile saved", "primary_goal", p.PrimaryGoal, "age", p.Age)
	return p, nil
}

func (s *service) Delete(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return apperrors.Wrap("storage_error", "failed to delete profile", err)
	}
	s.logger.Info("profile deleted")
	return nil
}

// Exists reports whether onboarding has produced a stored profile.
func (s *service) Exists(ctx context.Context) (bool, error) {
	_, ok, err := s.repo.Get(ctx)
	if err != nil {
		return false, apperrors.Wrap("storage_error", "failed to load profile", err)
	}
	return ok, nil
}
