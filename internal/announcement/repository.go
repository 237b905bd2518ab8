package announcement

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"soyhub-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetActive(ctx context.Context) ([]Announcement, error)
	GetAll(ctx context.Context) ([]Announcement, error)
	Create(ctx context.Context, title, message string) (Announcement, error)
	Update(ctx context.Context, id string, params UpdateParams) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetActive(ctx context.Context) ([]Announcement, error) {
	return r.query(ctx, `
		SELECT id, title, message, active, created_at, updated_at
		FROM announcements
		WHERE active = TRUE
		ORDER BY created_at DESC
	`)
}

func (r *repository) GetAll(ctx context.Context) ([]Announcement, error) {
	return r.query(ctx, `
		SELECT id, title, message, active, created_at, updated_at
		FROM announcements
		ORDER BY created_at DESC
	`)
}

func (r *repository) query(ctx context.Context, q string) ([]Announcement, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Announcement
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Message, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}

	return list, rows.Err()
}

// Create inserts a new banner, active by default.
func (r *repository) Create(ctx context.Context, title, message string) (Announcement, error) {
	log := logger.FromCtx(ctx)

	var a Announcement
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO announcements (title, message, active)
		VALUES ($1, $2, TRUE)
		RETURNING id, title, message, active, created_at, updated_at
	`, title, message).Scan(&a.ID, &a.Title, &a.Message, &a.Active, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		log.Error("db: failed to insert announcement", zap.Error(err))
		return Announcement{}, err
	}

	return a, nil
}

// Update applies only the provided fields and bumps updated_at.
func (r *repository) Update(ctx context.Context, id string, params UpdateParams) error {
	set := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if params.Title != nil {
		args = append(args, *params.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if params.Message != nil {
		args = append(args, *params.Message)
		set = append(set, fmt.Sprintf("message = $%d", len(args)))
	}
	if params.Active != nil {
		args = append(args, *params.Active)
		set = append(set, fmt.Sprintf("active = $%d", len(args)))
	}

	if len(set) == 0 {
		return ErrNoFieldsToUpdate
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	q := fmt.Sprintf("UPDATE announcements SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAnnouncementNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM announcements WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAnnouncementNotFound
	}

	return nil
}
