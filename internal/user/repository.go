package user

import (
	"context"
	"database/sql"

	"soyhub-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params SignUpParams, hashedPassword string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params SignUpParams, hashedPassword string) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	var facebook sql.NullString
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password, contact, facebook, campus)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, username, password, contact, facebook, campus, role, created_at
	`,
		params.Username, hashedPassword, params.Contact, params.Facebook, params.Campus,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Contact, &facebook, &u.Campus, &u.Role, &u.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("username", params.Username),
			zap.Error(err),
		)
		return User{}, err
	}

	if facebook.Valid {
		u.Facebook = &facebook.String
	}

	return u, nil
}

// FindByUsername matches case-insensitively so "Maria" and "maria" are the
// same account.
func (r *repository) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	var facebook sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password, contact, facebook, campus, role, created_at
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`, username).Scan(&u.ID, &u.Username, &u.Password, &u.Contact, &facebook, &u.Campus, &u.Role, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}

	if facebook.Valid {
		u.Facebook = &facebook.String
	}

	return u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (User, error) {
	var u User
	var facebook sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password, contact, facebook, campus, role, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Password, &u.Contact, &facebook, &u.Campus, &u.Role, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}

	if facebook.Valid {
		u.Facebook = &facebook.String
	}

	return u, nil
}
