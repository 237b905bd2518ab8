package user

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"soyhub-be/internal/logger"
	"soyhub-be/internal/utils"

	"go.uber.org/zap"
)

var contactPattern = regexp.MustCompile(`^[0-9]{10,13}$`)

type Service interface {
	SignUp(ctx context.Context, params SignUpParams) (string, User, error)
	Login(ctx context.Context, username, password string) (string, User, error)
	CurrentUser(ctx context.Context) (AuthUser, error)
	GetByID(ctx context.Context, id int) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SignUp(ctx context.Context, params SignUpParams) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SignUp"),
	)

	/* ---------- VALIDATION ---------- */

	params.Username = strings.TrimSpace(params.Username)
	if params.Username == "" {
		return "", User{}, errors.New("username is required")
	}

	if !contactPattern.MatchString(params.Contact) {
		log.Warn("signup rejected: bad contact number",
			zap.String("username", params.Username),
		)
		return "", User{}, ErrInvalidContact
	}

	if !validCampus(params.Campus) {
		return "", User{}, ErrInvalidCampus
	}

	/* ---------- DUPLICATE CHECK ---------- */

	_, err := s.repo.FindByUsername(ctx, params.Username)
	if err == nil {
		log.Warn("signup rejected: username taken",
			zap.String("username", params.Username),
		)
		return "", User{}, ErrUsernameTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return "", User{}, err
	}

	/* ---------- CREATE ---------- */

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, params, hashed)
	if err != nil {
		// Unique index on LOWER(username) closes the check-then-insert race.
		if strings.Contains(err.Error(), PgUniqueViolation) ||
			strings.Contains(err.Error(), "users_username_lower_key") {
			return "", User{}, ErrUsernameTaken
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Username)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("signup completed",
		zap.Int("user_id", u.ID),
		zap.String("username", u.Username),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		log.Warn("login failed: username not found", zap.String("username", username))
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("login failed: password mismatch", zap.String("username", username))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Username)
	return token, u, err
}

// CurrentUser resolves the identity injected into the context by the auth
// middleware into a full user record plus the admin flag.
func (s *service) CurrentUser(ctx context.Context) (AuthUser, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return AuthUser{}, ErrUserNotFound
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return AuthUser{}, err
	}

	return AuthUser{
		User:    u,
		IsAdmin: u.Role == RoleAdmin,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func validCampus(campus string) bool {
	for _, c := range CampusOptions {
		if c == campus {
			return true
		}
	}
	return false
}
