package order

import (
	"context"
	"database/sql"

	"soyhub-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) error
	GetByUser(ctx context.Context, userID int) ([]*Order, error)
	GetAll(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
	GetTodayStats(ctx context.Context) (Stats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx writes the order header and its lines in one transaction, so
// a failed line insert never leaves a headless order behind.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Insert order header with the delivery snapshot
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, delivery_option, total, status,
			delivery_username, delivery_contact, delivery_facebook, delivery_campus,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		o.ID,
		o.UserID,
		o.DeliveryOption,
		o.Total,
		o.Status,
		o.Delivery.Username,
		o.Delivery.Contact,
		o.Delivery.Facebook,
		o.Delivery.Campus,
		o.CreatedAt,
	)
	if err != nil {
		return err
	}

	// 2. Insert lines
	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, product_name,
				quantity, unit_price, subtotal
			) VALUES ($1,$2,$3,$4,$5,$6)
		`,
			o.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) GetByUser(ctx context.Context, userID int) ([]*Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, user_id, delivery_option, total, status,
		       delivery_username, delivery_contact, delivery_facebook, delivery_campus,
		       created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *repository) GetAll(ctx context.Context) ([]*Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, user_id, delivery_option, total, status,
		       delivery_username, delivery_contact, delivery_facebook, delivery_campus,
		       created_at
		FROM orders
		ORDER BY created_at DESC
	`)
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...any) ([]*Order, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("db: failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	byID := make(map[string]*Order)

	for rows.Next() {
		var o Order
		var facebook sql.NullString
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.DeliveryOption, &o.Total, &o.Status,
			&o.Delivery.Username, &o.Delivery.Contact, &facebook, &o.Delivery.Campus,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Delivery.Facebook = facebook.String

		orders = append(orders, &o)
		byID[o.ID] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	// Attach lines in one pass instead of a query per order.
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT order_id, product_id, product_name, quantity, unit_price, subtotal
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY product_name
	`, pq.Array(ids))
	if err != nil {
		log.Error("db: failed to query order items", zap.Error(err))
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item OrderItem
		if err := itemRows.Scan(
			&orderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.Subtotal,
		); err != nil {
			return nil, err
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	return orders, itemRows.Err()
}

// UpdateStatus is the single write for a status transition. Orders live in one
// table only, so both the user view and the admin view read this same row.
func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE id = $2",
		status, orderID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) GetTodayStats(ctx context.Context) (Stats, error) {
	var s Stats
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'delivered'),
		       COALESCE(SUM(total), 0)
		FROM orders
		WHERE created_at >= date_trunc('day', now())
	`).Scan(&s.OrdersToday, &s.DeliveredToday, &s.RevenueToday)
	return s, err
}
