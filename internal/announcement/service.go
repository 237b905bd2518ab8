package announcement

import (
	"context"
	"errors"
	"strings"

	"soyhub-be/internal/logger"
	"soyhub-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	ListActive(ctx context.Context) ([]Announcement, error)
	ListAll(ctx context.Context) ([]Announcement, error)
	Create(ctx context.Context, title, message string) (Announcement, error)
	Update(ctx context.Context, id string, params UpdateParams) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListActive is the shopper-facing feed: active banners only, newest first.
func (s *service) ListActive(ctx context.Context) ([]Announcement, error) {
	return s.repo.GetActive(ctx)
}

func (s *service) ListAll(ctx context.Context) ([]Announcement, error) {
	if !isAdmin(ctx) {
		return nil, ErrUnauthorized
	}
	return s.repo.GetAll(ctx)
}

func (s *service) Create(ctx context.Context, title, message string) (Announcement, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateAnnouncement"),
	)

	if !isAdmin(ctx) {
		return Announcement{}, ErrUnauthorized
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return Announcement{}, errors.New("title cannot be empty")
	}

	a, err := s.repo.Create(ctx, title, message)
	if err != nil {
		log.Error("failed to create announcement", zap.Error(err))
		return Announcement{}, err
	}

	log.Info("announcement created", zap.String("id", a.ID))
	return a, nil
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) error {
	if !isAdmin(ctx) {
		return ErrUnauthorized
	}

	if params.empty() {
		return ErrNoFieldsToUpdate
	}

	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return errors.New("title cannot be empty")
	}

	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if !isAdmin(ctx) {
		return ErrUnauthorized
	}
	return s.repo.Delete(ctx, id)
}

func isAdmin(ctx context.Context) bool {
	return utils.GetUserRoleFromContext(ctx) == "ADMIN"
}
