package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/apperr"
	"marketplace/internal/events"
	"marketplace/internal/hash"
	"marketplace/internal/logging"
	"marketplace/internal/models"
	"marketplace/internal/repo"
	"marketplace/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Producer  *events.Producer
}

// Register creates a seller account. The role is always seller; admin
// accounts only come from the startup seed.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, apperr.Internal(err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleSeller,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			l.Warn("register_error", "status", 409, "reason", "email already registered")
			return nil, err
		}
		l.Error("register_error", "status", 500, "reason", "cannot create user", "error", err)
		return nil, apperr.Internal(err)
	}

	event := map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicUserEvents, user.ID.String(), event); err != nil {
		l.Error("kafka_publish_error", "topic", events.TopicUserEvents, "error", err)
	}

	l.Info("register_success", "userID", user.ID)
	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return "", apperr.Internal(err)
	}
	if user == nil || !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "invalid email or password")
		return "", apperr.ErrInvalidCredentials
	}

	token, err := tokens.SignAccessToken(user.ID, user.Email, user.Role, s.JWTSecret)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return "", apperr.Internal(err)
	}

	l.Info("login_success", "userID", user.ID)
	return token, nil
}

// SeedAdmin creates the admin account at startup if it does not exist yet.
// Safe to run on every boot; a concurrent duplicate insert counts as done.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password string) error {
	l := logging.FromContext(ctx).With("svc", "auth.seed_admin")

	existing, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	admin := models.User{
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleAdmin,
	}
	if err := s.Repo.CreateUser(ctx, &admin); err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			return nil
		}
		return fmt.Errorf("seed admin: %w", err)
	}

	l.Info("admin_seeded", "email", email)
	return nil
}
