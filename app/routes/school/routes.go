package school

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cois1702/trio-homework-app/app/config"
	"github.com/cois1702/trio-homework-app/app/routes/auth"
	"github.com/cois1702/trio-homework-app/app/storage"
	"github.com/cois1702/trio-homework-app/app/store"
)

func SetupSchoolRoutes(app *fiber.App, st *store.Store, blobs storage.Resolver, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/school-info", func(c *fiber.Ctx) error { return GetSchoolInfoAPI(c, st) })

	admin := api.Group("/admin", auth.AdminMiddleware(cfg))
	admin.Patch("/update-school-info", func(c *fiber.Ctx) error { return UpdateSchoolInfoAPI(c, st, blobs) })
	admin.Post("/reset-teacher-password", func(c *fiber.Ctx) error { return ResetTeacherPasswordAPI(c, st) })
}
