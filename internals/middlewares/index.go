// file: internals/middlewares/index.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares applies the global chain. Order matters: recovery first
// so panics in later middleware are still caught.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
