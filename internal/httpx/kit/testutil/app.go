// Package testutil builds minimal Fiber apps for handler tests.
package testutil

import (
	"github.com/gofiber/fiber/v2"

	"previplan/internal/httpx/kit"
)

// NewApp returns a Fiber app wired with the production error handler,
// with only the given mount functions applied. Handler tests use it to
// exercise a route group without the full router.
func NewApp(mounts ...func(*fiber.App)) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	for _, mount := range mounts {
		if mount != nil {
			mount(app)
		}
	}
	return app
}
