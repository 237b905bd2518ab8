package order

import (
	"context"
	"fmt"
	"time"

	"soyhub-be/internal/cart"
	"soyhub-be/internal/logger"
	"soyhub-be/internal/product"
	"soyhub-be/internal/user"
	"soyhub-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, opt DeliveryOption) (*Order, error)
	SetStatus(ctx context.Context, orderID string, status Status) error
	ListMine(ctx context.Context) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	TodayStats(ctx context.Context) (Stats, error)
}

type service struct {
	repo        Repository
	cartSvc     cart.Service
	userRepo    user.Repository
	productRepo product.Repository
	deliveryFee float64
}

func NewService(repo Repository, cartSvc cart.Service, userRepo user.Repository, productRepo product.Repository, deliveryFee float64) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		userRepo:    userRepo,
		productRepo: productRepo,
		deliveryFee: deliveryFee,
	}
}

// Checkout turns the caller's cart into a pending order. The cart survives
// every failure path untouched so the user can simply retry; it is cleared
// only after the order row is committed.
func (s *service) Checkout(ctx context.Context, opt DeliveryOption) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("delivery_option", string(opt)),
	)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	if !ValidDeliveryOption(opt) {
		return nil, ErrInvalidDeliveryOption
	}

	/* ---------- VALIDATE CART ---------- */

	items := s.cartSvc.Items(userID)
	if len(items) == 0 {
		log.Warn("checkout rejected: empty cart", zap.Int("user_id", userID))
		return nil, ErrEmptyCart
	}

	// Lines added before an admin disabled the product stay in the cart; the
	// re-check here is what finally blocks them. The cart is left as-is so the
	// user can drop the line and retry.
	for _, it := range items {
		p, err := s.productRepo.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
		}
		if !p.Available {
			log.Warn("checkout rejected: product no longer available",
				zap.String("product_id", it.ProductID),
			)
			return nil, cart.ErrProductUnavailable
		}
	}

	/* ---------- PRICE ---------- */

	fee := 0.0
	if opt == OptionDelivery {
		fee = s.deliveryFee
	}

	lines := make([]OrderItem, 0, len(items))
	var total float64
	for _, it := range items {
		unit := it.UnitPrice + fee
		subtotal := float64(it.Quantity) * unit
		total += subtotal

		lines = append(lines, OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			UnitPrice:   unit,
			Subtotal:    subtotal,
		})
	}

	/* ---------- DELIVERY SNAPSHOT ---------- */

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error("failed to load user for checkout", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	o := &Order{
		ID:             uuid.New().String(),
		UserID:         userID,
		Items:          lines,
		DeliveryOption: opt,
		Total:          total,
		Status:         StatusPending,
		Delivery: DeliveryInfo{
			Username: u.Username,
			Contact:  u.Contact,
			Facebook: utils.PtrString(u.Facebook),
			Campus:   u.Campus,
		},
		CreatedAt: time.Now(),
	}

	/* ---------- PERSIST & CLEAR CART ---------- */

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		log.Error("failed to persist order",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	s.cartSvc.Clear(userID)

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int("user_id", userID),
		zap.Int("line_count", len(lines)),
		zap.Float64("total", total),
	)

	return o, nil
}

// SetStatus moves an order between pending and delivered (admin only). Both
// directions are legal and repeatable.
func (s *service) SetStatus(ctx context.Context, orderID string, status Status) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SetStatus"),
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)

	if utils.GetUserRoleFromContext(ctx) != "ADMIN" {
		return ErrUnauthorized
	}

	if !ValidStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return err
	}

	log.Info("order status updated")
	return nil
}

// ListMine returns the caller's own orders, newest first.
func (s *service) ListMine(ctx context.Context) ([]*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	return s.repo.GetByUser(ctx, userID)
}

// ListAll returns every order, newest first (admin dashboard).
func (s *service) ListAll(ctx context.Context) ([]*Order, error) {
	if utils.GetUserRoleFromContext(ctx) != "ADMIN" {
		return nil, ErrUnauthorized
	}
	return s.repo.GetAll(ctx)
}

func (s *service) TodayStats(ctx context.Context) (Stats, error) {
	if utils.GetUserRoleFromContext(ctx) != "ADMIN" {
		return Stats{}, ErrUnauthorized
	}
	return s.repo.GetTodayStats(ctx)
}
