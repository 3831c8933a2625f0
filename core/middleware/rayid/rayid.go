package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is the fiber locals key under which the ray ID is stored.
const LocalsKey = "ray_id"

// Header is the response header carrying the ray ID back to the client.
const Header = "X-Ray-ID"

// New returns a middleware that assigns a unique ray ID to each request.
// The ID is stored in the request locals and echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
