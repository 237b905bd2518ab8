package product

import (
	"context"
	"database/sql"

	"soyhub-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, available, stock, image_url, created_at
		FROM products
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		var imageURL sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Available, &p.Stock, &imageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		if imageURL.Valid {
			p.ImageURL = &imageURL.String
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	var imageURL sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, available, stock, image_url, created_at
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Price, &p.Available, &p.Stock, &imageURL, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}

	return &p, nil
}

func (r *repository) SetAvailability(ctx context.Context, id string, available bool) error {
	log := logger.FromCtx(ctx)

	res, err := r.db.ExecContext(ctx,
		"UPDATE products SET available = $1 WHERE id = $2",
		available, id,
	)
	if err != nil {
		log.Error("db: failed to update availability",
			zap.String("product_id", id),
			zap.Error(err),
		)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
