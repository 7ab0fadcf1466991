package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cois1702/trio-homework-app/app/models"
	"github.com/cois1702/trio-homework-app/app/store"
	"github.com/cois1702/trio-homework-app/app/validation"
)

// RegisterAPI creates a teacher account. Emails are unique across teachers,
// compared case-sensitively.
func RegisterAPI(c *fiber.Ctx, st *store.Store) error {
	type RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(req); err != nil {
		return c.JSON(fiber.Map{"error": "All fields are required"})
	}

	teachers, err := st.Teachers.List(c.Context())
	if err != nil {
		log.Printf("register: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	for _, t := range teachers {
		if t.Email == req.Email {
			return c.JSON(fiber.Map{"error": "Email already exists"})
		}
	}

	teacher := models.Teacher{
		ID:        models.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		CreatedAt: time.Now(),
	}
	if err := st.Teachers.Insert(c.Context(), teacher); err != nil {
		log.Printf("register: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Teacher registered!"})
}

// LoginAPI authenticates a teacher. The response never says whether the
// email or the password was wrong, and never carries the password back.
func LoginAPI(c *fiber.Ctx, st *store.Store) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(req); err != nil {
		return c.JSON(fiber.Map{"error": "All fields are required"})
	}

	teachers, err := st.Teachers.List(c.Context())
	if err != nil {
		log.Printf("login: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	for _, t := range teachers {
		if t.Email == req.Email && t.Password == req.Password {
			return c.JSON(fiber.Map{"user": t.Public()})
		}
	}

	return c.JSON(fiber.Map{"error": "Invalid credentials"})
}
