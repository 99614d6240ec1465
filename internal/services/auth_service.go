package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/auth"
	"github.com/getmorediners/backend/internal/config"
	"github.com/getmorediners/backend/internal/datasource"
	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// TokenRevoker denylists token ids on sign-out.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type AuthService struct {
	ds         datasource.DataSource
	revoker    TokenRevoker
	selections *SelectionService
	cfg        *config.Config
	log        *zap.Logger
}

func NewAuthService(ds datasource.DataSource, revoker TokenRevoker, selections *SelectionService, cfg *config.Config, log *zap.Logger) *AuthService {
	return &AuthService{ds: ds, revoker: revoker, selections: selections, cfg: cfg, log: log}
}

func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return "", nil, apperr.Invalid("email", "must be a valid email address")
	}
	if len(in.Password) < minPasswordLength {
		return "", nil, apperr.Invalid("password", "must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	u := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    optional(in.FirstName),
		LastName:     optional(in.LastName),
	}
	if err := s.ds.CreateUser(ctx, u); err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			return "", nil, err
		}
		return "", nil, apperr.Persistence("create account", err)
	}

	s.log.Info("account created", zap.String("user_id", u.ID.String()))
	token, err := auth.GenerateJWT(s.cfg.JWTSecret, u.ID, u.Email, s.cfg.JWTExpiration)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.ds.GetUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, apperr.ErrNotFound) {
		return "", nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, apperr.Persistence("sign in", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, u.ID, u.Email, s.cfg.JWTExpiration)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// SignOut revokes the token and drops the owner's working selection.
func (s *AuthService) SignOut(ctx context.Context, claims *auth.Claims) error {
	if err := s.revoker.Revoke(ctx, claims.TokenID(), claims.TTL()); err != nil {
		return err
	}
	if err := s.selections.Clear(ctx, claims.UserID); err != nil {
		s.log.Warn("selection not cleared on sign out", zap.Error(err))
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	u, err := s.ds.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("load account", err)
	}
	return u, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
