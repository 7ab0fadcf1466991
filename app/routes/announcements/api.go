package announcements

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cois1702/trio-homework-app/app/models"
	"github.com/cois1702/trio-homework-app/app/store"
	"github.com/cois1702/trio-homework-app/app/validation"
)

// CreateAnnouncementAPI stores an announcement. The teacher name is copied
// into the snapshot when present; only the ID is required.
func CreateAnnouncementAPI(c *fiber.Ctx, st *store.Store) error {
	type CreateAnnouncementRequest struct {
		Grade       string `json:"grade" validate:"required"`
		ClassLetter string `json:"classLetter" validate:"required"`
		Message     string `json:"message" validate:"required"`
		Teacher     struct {
			ID   string `json:"id" validate:"required"`
			Name string `json:"name"`
		} `json:"teacher"`
	}

	var req CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(req); err != nil {
		return c.JSON(fiber.Map{"error": "All fields are required"})
	}

	announcement := models.Announcement{
		ID:          models.NewID(),
		Grade:       req.Grade,
		ClassLetter: req.ClassLetter,
		Message:     req.Message,
		Teacher:     models.TeacherRef{ID: req.Teacher.ID, Name: req.Teacher.Name},
		CreatedAt:   time.Now(),
	}
	if err := st.Announcements.Insert(c.Context(), announcement); err != nil {
		log.Printf("create announcement: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Announcement created!"})
}

// GetAnnouncementsAPI lists every announcement.
func GetAnnouncementsAPI(c *fiber.Ctx, st *store.Store) error {
	announcements, err := st.Announcements.List(c.Context())
	if err != nil {
		log.Printf("list announcements: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	if announcements == nil {
		announcements = []models.Announcement{}
	}
	return c.JSON(announcements)
}

// GetStudentAnnouncementsAPI lists the announcements visible to one
// grade/class pair.
func GetStudentAnnouncementsAPI(c *fiber.Ctx, st *store.Store) error {
	grade := c.Query("grade")
	classLetter := c.Query("classLetter")

	announcements, err := st.Announcements.List(c.Context())
	if err != nil {
		log.Printf("student announcements: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	matched := []models.Announcement{}
	for _, a := range announcements {
		if models.MatchesStudent(a.Grade, a.ClassLetter, grade, classLetter) {
			matched = append(matched, a)
		}
	}
	return c.JSON(matched)
}

// DeleteAnnouncementAPI removes an announcement. Unknown IDs still succeed.
func DeleteAnnouncementAPI(c *fiber.Ctx, st *store.Store) error {
	if err := st.Announcements.Delete(c.Context(), c.Params("id")); err != nil {
		log.Printf("delete announcement: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"message": "Announcement deleted"})
}
