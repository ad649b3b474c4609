// Package rayid assigns a unique request ID (RayID) to every incoming
// request, stored in the Fiber locals and echoed in the X-Ray-Id response
// header so clients and logs can correlate a request end to end.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the generated RayID.
const HeaderName = "X-Ray-Id"

// LocalsKey is the Fiber locals key the RayID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that generates a RayID per request. An incoming
// X-Ray-Id header is honored so upstream proxies can pre-assign one.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
