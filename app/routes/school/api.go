package school

import (
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cois1702/trio-homework-app/app/models"
	"github.com/cois1702/trio-homework-app/app/storage"
	"github.com/cois1702/trio-homework-app/app/store"
	"github.com/cois1702/trio-homework-app/app/validation"
)

// GetSchoolInfoAPI returns the school branding settings, creating the
// defaults on first read.
func GetSchoolInfoAPI(c *fiber.Ctx, st *store.Store) error {
	settings, err := st.Settings.Get(c.Context())
	if err != nil {
		log.Printf("school-info: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(settings)
}

// UpdateSchoolInfoAPI merges an optional schoolName and an optional logo
// file into the settings record. Fields that were not sent stay untouched.
func UpdateSchoolInfoAPI(c *fiber.Ctx, st *store.Store, blobs storage.Resolver) error {
	var patch models.SettingsPatch

	if fh, err := c.FormFile("logo"); err == nil {
		f, err := fh.Open()
		if err != nil {
			log.Printf("update-school-info: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Server error"})
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			log.Printf("update-school-info: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Server error"})
		}
		url := blobs.Resolve(c.Context(), data, fh.Filename, fh.Header.Get("Content-Type"), "logos")
		patch.SchoolLogo = &url
	}

	if name := strings.TrimSpace(c.FormValue("schoolName")); name != "" {
		patch.SchoolName = &name
	} else if c.Is("json") {
		var req struct {
			SchoolName *string `json:"schoolName"`
		}
		if err := c.BodyParser(&req); err == nil && req.SchoolName != nil && strings.TrimSpace(*req.SchoolName) != "" {
			patch.SchoolName = req.SchoolName
		}
	}

	settings, err := st.Settings.Update(c.Context(), patch)
	if err != nil {
		log.Printf("update-school-info: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "School info updated", "school": settings})
}

// ResetTeacherPasswordAPI overwrites a teacher's password in place.
func ResetTeacherPasswordAPI(c *fiber.Ctx, st *store.Store) error {
	type ResetPasswordRequest struct {
		Email       string `json:"email" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required"`
	}

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(req); err != nil {
		return c.JSON(fiber.Map{"error": "All fields are required"})
	}

	teachers, err := st.Teachers.List(c.Context())
	if err != nil {
		log.Printf("reset-teacher-password: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	for _, t := range teachers {
		if t.Email == req.Email {
			t.Password = req.NewPassword
			if err := st.Teachers.Replace(c.Context(), t.ID, t); err != nil {
				log.Printf("reset-teacher-password: %v", err)
				return c.Status(500).JSON(fiber.Map{"error": "Server error"})
			}
			return c.JSON(fiber.Map{"message": "Password reset successfully"})
		}
	}

	return c.JSON(fiber.Map{"error": "Teacher not found"})
}
