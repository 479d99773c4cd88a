package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"llc_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack in order:
// recovery → CORS → request logging → global rate limiting.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
