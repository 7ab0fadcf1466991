// Package server assembles the fiber application. Keeping assembly out of
// main lets tests build an app around an in-memory store.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/cois1702/trio-homework-app/app/config"
	"github.com/cois1702/trio-homework-app/app/routes/announcements"
	"github.com/cois1702/trio-homework-app/app/routes/auth"
	"github.com/cois1702/trio-homework-app/app/routes/school"
	"github.com/cois1702/trio-homework-app/app/routes/tasks"
	"github.com/cois1702/trio-homework-app/app/routes/uploads"
	"github.com/cois1702/trio-homework-app/app/storage"
	"github.com/cois1702/trio-homework-app/app/store"
)

// errorHandler catches anything that escapes a handler. Client-side
// failures never get here; handlers report those inside a 200 body.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func New(cfg *config.Config, st *store.Store, blobs storage.Resolver) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		BodyLimit:    25 * 1024 * 1024,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/", cfg.StaticDir)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "store": st.Backend})
	})

	// Auth routes must register before the admin group so /api/admin/login
	// stays reachable without a token.
	auth.SetupAuthRoutes(app, st, cfg)
	school.SetupSchoolRoutes(app, st, blobs, cfg)
	tasks.SetupTaskRoutes(app, st)
	announcements.SetupAnnouncementRoutes(app, st)
	uploads.SetupUploadRoutes(app, st, blobs)

	return app
}
