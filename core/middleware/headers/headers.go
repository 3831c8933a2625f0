package headers

import (
	"github.com/gofiber/fiber/v2"
)

// Fixed response headers required by the browser client during local
// development: allow cross-origin loads and defeat stale caches.
const (
	AllowOrigin  = "*"
	AllowMethods = "GET"
	CacheControl = "no-store, no-cache, must-revalidate"
)

// New returns a middleware that attaches the fixed header set to every response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, AllowOrigin)
		c.Set(fiber.HeaderAccessControlAllowMethods, AllowMethods)
		c.Set(fiber.HeaderCacheControl, CacheControl)
		return c.Next()
	}
}
