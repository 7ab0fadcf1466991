package tasks

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cois1702/trio-homework-app/app/models"
	"github.com/cois1702/trio-homework-app/app/store"
	"github.com/cois1702/trio-homework-app/app/validation"
)

// CreateTaskAPI stores a homework task. Only the teacher's {id, name}
// snapshot is kept, never a live reference.
func CreateTaskAPI(c *fiber.Ctx, st *store.Store) error {
	type CreateTaskRequest struct {
		Grade       string `json:"grade" validate:"required"`
		ClassLetter string `json:"classLetter" validate:"required"`
		Subject     string `json:"subject" validate:"required"`
		Description string `json:"description" validate:"required"`
		DueDate     string `json:"dueDate" validate:"required"`
		Teacher     struct {
			ID   string `json:"id" validate:"required"`
			Name string `json:"name" validate:"required"`
		} `json:"teacher"`
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(req); err != nil {
		return c.JSON(fiber.Map{"error": "All fields are required"})
	}

	task := models.Task{
		ID:          models.NewID(),
		Grade:       req.Grade,
		ClassLetter: req.ClassLetter,
		Subject:     req.Subject,
		Description: req.Description,
		DueDate:     req.DueDate,
		Done:        false,
		Teacher:     models.TeacherRef{ID: req.Teacher.ID, Name: req.Teacher.Name},
		CreatedAt:   time.Now(),
	}
	if err := st.Tasks.Insert(c.Context(), task); err != nil {
		log.Printf("create task: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Task created!"})
}

// GetTasksAPI lists every task.
func GetTasksAPI(c *fiber.Ctx, st *store.Store) error {
	tasks, err := st.Tasks.List(c.Context())
	if err != nil {
		log.Printf("list tasks: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return c.JSON(tasks)
}

// GetStudentTasksAPI lists the tasks visible to one grade/class pair.
func GetStudentTasksAPI(c *fiber.Ctx, st *store.Store) error {
	grade := c.Query("grade")
	classLetter := c.Query("classLetter")

	tasks, err := st.Tasks.List(c.Context())
	if err != nil {
		log.Printf("student tasks: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	matched := []models.Task{}
	for _, t := range tasks {
		if models.MatchesStudent(t.Grade, t.ClassLetter, grade, classLetter) {
			matched = append(matched, t)
		}
	}
	return c.JSON(matched)
}

// ToggleTaskDoneAPI flips a task's done flag and echoes the new state.
func ToggleTaskDoneAPI(c *fiber.Ctx, st *store.Store) error {
	id := c.Params("id")

	task, found, err := store.FindByID(c.Context(), st.Tasks, id)
	if err != nil {
		log.Printf("toggle task: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	if !found {
		return c.JSON(fiber.Map{"error": "Task not found"})
	}

	task.Done = !task.Done
	if err := st.Tasks.Replace(c.Context(), id, task); err != nil {
		log.Printf("toggle task: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Task updated", "done": task.Done})
}

// DeleteTaskAPI removes a task. Deleting an unknown ID still succeeds.
func DeleteTaskAPI(c *fiber.Ctx, st *store.Store) error {
	if err := st.Tasks.Delete(c.Context(), c.Params("id")); err != nil {
		log.Printf("delete task: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"message": "Task deleted"})
}
