package tasks

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cois1702/trio-homework-app/app/store"
)

func SetupTaskRoutes(app *fiber.App, st *store.Store) {
	api := app.Group("/api")

	api.Post("/task", func(c *fiber.Ctx) error { return CreateTaskAPI(c, st) })
	api.Get("/tasks", func(c *fiber.Ctx) error { return GetTasksAPI(c, st) })
	api.Get("/tasks/student", func(c *fiber.Ctx) error { return GetStudentTasksAPI(c, st) })
	api.Put("/task/:id/done", func(c *fiber.Ctx) error { return ToggleTaskDoneAPI(c, st) })
	api.Delete("/task/:id", func(c *fiber.Ctx) error { return DeleteTaskAPI(c, st) })
}
