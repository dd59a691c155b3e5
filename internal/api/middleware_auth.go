package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const adminRole = "admin"

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminRequired guards the manual-trigger and preview endpoints. Tokens are
// issued by the backoffice with the shared secret key.
func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	rawToken := bearerToken(c)
	if rawToken == "" {
		return apiError(c, fiber.StatusUnauthorized, "missing bearer token")
	}

	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return apiError(c, fiber.StatusUnauthorized, "invalid token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return apiError(c, fiber.StatusUnauthorized, "token expired")
	}
	if claims.Role != adminRole {
		return apiError(c, fiber.StatusForbidden, "admin role required")
	}

	return c.Next()
}

// CronAuthorized rejects scheduler triggers only when a shared secret is
// configured and the header mismatches.
func (handler *Handler) CronAuthorized(c *fiber.Ctx) error {
	if handler.cronSecret != "" && c.Get("X-Cron-Secret") != handler.cronSecret {
		return apiError(c, fiber.StatusUnauthorized, "invalid cron secret")
	}
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
