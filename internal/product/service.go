package product

import (
	"context"
	"time"

	"soyhub-be/internal/logger"
	"soyhub-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List returns the whole catalog, available or not; callers render the flag.
func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// SetAvailability toggles whether a product can be added to carts. Admin only,
// idempotent, visible to the next List call.
func (s *service) SetAvailability(ctx context.Context, id string, available bool) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SetAvailability"),
		zap.String("product_id", id),
		zap.Bool("available", available),
	)

	if utils.GetUserRoleFromContext(ctx) != "ADMIN" {
		log.Warn("availability toggle rejected: not admin")
		return ErrUnauthorized
	}

	start := time.Now()
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		log.Error("failed to toggle availability",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}

	log.Info("availability updated", zap.Duration("duration", time.Since(start)))
	return nil
}
