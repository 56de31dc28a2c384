package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Logging attaches the logger to the request context and emits one
// structured line per request with method, path, status and latency.
func Logging(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		c.SetUserContext(logger.WithContext(c.UserContext()))

		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		logger.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
