package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumescan/pkg/history"
	"github.com/artem13815/resumescan/pkg/security/jwt"
)

// ownerFrom returns the token subject set by the auth middleware, or the
// anonymous owner when auth is disabled.
func ownerFrom(c *fiber.Ctx) string {
	if owner, ok := c.Locals(jwt.OwnerKey).(string); ok && owner != "" {
		return owner
	}
	return history.AnonymousOwner
}
