package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jiruejeta/job-portal/internal/apperr"
	"github.com/jiruejeta/job-portal/internal/models"
)

// UserLoader resolves a token subject to a user record.
type UserLoader interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

// Protect parses the bearer token, loads the user it names, and stores it
// in Locals for the handlers downstream.
func Protect(secret string, users UserLoader) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return unauthorized(c, "Not authorized, no token")
		}
		tokenStr := strings.TrimSpace(auth[7:])

		var claims jwt.RegisteredClaims
		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
				}
				return key, nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid || claims.Subject == "" {
			return unauthorized(c, "Not authorized, invalid token")
		}

		user, err := users.FindByID(c.Context(), claims.Subject)
		if err != nil {
			// A malformed subject or missing user both mean the bearer
			// credential no longer names anyone.
			if apperr.StatusCode(err) < fiber.StatusInternalServerError {
				return unauthorized(c, "Not authorized, user no longer exists")
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Could not verify user",
			})
		}

		c.Locals("user", user)
		c.Locals("user_id", user.ID.Hex())
		return c.Next()
	}
}

// Authorize allows only the given roles past. Must run after Protect.
func Authorize(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return unauthorized(c, "Not authorized, no token")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Not authorized to access this route",
		})
	}
}

// CurrentUser returns the user Protect stored on the request.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
