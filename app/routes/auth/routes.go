package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cois1702/trio-homework-app/app/config"
	"github.com/cois1702/trio-homework-app/app/store"
)

func SetupAuthRoutes(app *fiber.App, st *store.Store, cfg *config.Config) {
	api := app.Group("/api")

	api.Post("/register", func(c *fiber.Ctx) error { return RegisterAPI(c, st) })
	api.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, st) })
	api.Post("/admin/login", func(c *fiber.Ctx) error { return AdminLoginAPI(c, cfg) })
}
