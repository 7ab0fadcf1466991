package announcements

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cois1702/trio-homework-app/app/store"
)

func SetupAnnouncementRoutes(app *fiber.App, st *store.Store) {
	api := app.Group("/api")

	api.Post("/announcement", func(c *fiber.Ctx) error { return CreateAnnouncementAPI(c, st) })
	api.Get("/announcements", func(c *fiber.Ctx) error { return GetAnnouncementsAPI(c, st) })
	api.Get("/announcements/student", func(c *fiber.Ctx) error { return GetStudentAnnouncementsAPI(c, st) })
	api.Delete("/announcement/:id", func(c *fiber.Ctx) error { return DeleteAnnouncementAPI(c, st) })
}
