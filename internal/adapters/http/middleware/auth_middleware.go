package middleware

import (
	"strings"

	"phonestore-api/internal/config"
	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/pkg/jwt"
	"phonestore-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// principalKey is the request-scoped locals key the guard publishes the
// principal under. Locals live and die with the request, so there is no
// cross-request leakage.
const principalKey = "principal"

// Guard inspects the Authorization header on every request. A missing
// header lets the request proceed anonymous; authorization is then up to
// the individual handlers. A present header must carry a valid bearer
// token or the request is rejected before any handler runs.
func Guard(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next() // anonymous
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Authorization header must use the Bearer scheme")
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.Verify(token, cfg.JWT.Secret)
		if err != nil {
			switch err {
			case jwt.ErrTokenExpired:
				return response.Unauthorized(c, "Token has expired, please log in again")
			case jwt.ErrTokenMalformed:
				return response.Unauthorized(c, "Token is malformed")
			case jwt.ErrBadSignature:
				return response.Unauthorized(c, "Token signature is invalid")
			default:
				return response.Unauthorized(c, "Token is invalid")
			}
		}

		c.Locals(principalKey, claims.Principal())
		return c.Next()
	}
}

// Principal returns the authenticated principal for this request, or nil
// when the request is anonymous.
func Principal(c *fiber.Ctx) *domain.Principal {
	p, _ := c.Locals(principalKey).(*domain.Principal)
	return p
}

// RequireAuth rejects anonymous requests. Use after Guard on routes that
// need an authenticated principal.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Principal(c) == nil {
			return response.Unauthorized(c, "Authentication required")
		}
		return c.Next()
	}
}

// RequireAdmin rejects requests whose principal does not carry the admin
// role. Anonymous requests get 401, authenticated non-admins get 403.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := Principal(c)
		if p == nil {
			return response.Unauthorized(c, "Authentication required")
		}
		if !p.Role.IsAdmin() {
			return response.Forbidden(c, "Admin role required")
		}
		return c.Next()
	}
}
