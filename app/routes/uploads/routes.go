package uploads

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cois1702/trio-homework-app/app/storage"
	"github.com/cois1702/trio-homework-app/app/store"
)

func SetupUploadRoutes(app *fiber.App, st *store.Store, blobs storage.Resolver) {
	api := app.Group("/api")

	api.Post("/upload", func(c *fiber.Ctx) error { return UploadFileAPI(c, st, blobs) })
	api.Get("/uploads", func(c *fiber.Ctx) error { return GetUploadsAPI(c, st) })
	api.Get("/uploads/student", func(c *fiber.Ctx) error { return GetStudentUploadsAPI(c, st) })
	api.Delete("/upload/:id", func(c *fiber.Ctx) error { return DeleteUploadAPI(c, st, blobs) })
}
