package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestID is a Fiber middleware that tags each request with an id. An id
// sent by the client is kept; otherwise a new UUID is generated. The id is
// echoed in the response header and stored in Locals under "request_id".
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDHeader, id)
		c.Locals("request_id", id)

		return c.Next()
	}
}
