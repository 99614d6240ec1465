package middleware

import (
	"context"
	"strings"

	"github.com/getmorediners/backend/internal/auth"
	"github.com/getmorediners/backend/internal/config"
	"github.com/getmorediners/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
	CtxClaims = "claims"
)

// TokenRevoker reports whether a token id was revoked by sign-out.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

func AuthMiddleware(cfg *config.Config, revoker TokenRevoker, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "missing authorization header")
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return unauthorized(c, "invalid authorization format")
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return unauthorized(c, "invalid or expired token")
		}

		revoked, err := revoker.IsRevoked(c.UserContext(), claims.TokenID())
		if err != nil {
			// fail open like the rate limiter, the signature is still checked
			log.Warn("token revocation check failed", zap.Error(err))
		}
		if revoked {
			return unauthorized(c, "session has ended")
		}

		c.Locals(CtxUserID, claims.UserID)
		c.Locals(CtxClaims, claims)

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: msg, RequestID: GetRequestID(c)})
}

func GetUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxUserID).(uuid.UUID)
	return id
}

func GetClaims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(CtxClaims).(*auth.Claims)
	return claims
}
