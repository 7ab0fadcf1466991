package uploads

import (
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cois1702/trio-homework-app/app/models"
	"github.com/cois1702/trio-homework-app/app/storage"
	"github.com/cois1702/trio-homework-app/app/store"
)

// UploadFileAPI resolves the file to a URL and stores the metadata record.
// The request succeeds even when blob storage fell back to a placeholder.
func UploadFileAPI(c *fiber.Ctx, st *store.Store, blobs storage.Resolver) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(fiber.Map{"error": "File and teacherId are required"})
	}
	teacherID := c.FormValue("teacherId")
	if teacherID == "" {
		return c.JSON(fiber.Map{"error": "File and teacherId are required"})
	}

	grade := c.FormValue("grade")
	if grade == "" {
		grade = models.Wildcard
	}
	classLetter := c.FormValue("classLetter")
	if classLetter == "" {
		classLetter = models.Wildcard
	}

	f, err := fh.Open()
	if err != nil {
		log.Printf("upload: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		log.Printf("upload: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	url := blobs.Resolve(c.Context(), data, fh.Filename, fh.Header.Get("Content-Type"), "uploads")

	upload := models.Upload{
		ID:           models.NewID(),
		TeacherID:    teacherID,
		Filename:     url,
		OriginalName: fh.Filename,
		Grade:        grade,
		ClassLetter:  classLetter,
		UploadedAt:   time.Now(),
	}
	if err := st.Uploads.Insert(c.Context(), upload); err != nil {
		log.Printf("upload: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "File uploaded!"})
}

// GetUploadsAPI lists uploads, optionally narrowed to one teacher.
func GetUploadsAPI(c *fiber.Ctx, st *store.Store) error {
	uploads, err := st.Uploads.List(c.Context())
	if err != nil {
		log.Printf("list uploads: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	teacherID := c.Query("teacherId")
	files := []models.Upload{}
	for _, u := range uploads {
		if teacherID == "" || u.TeacherID == teacherID {
			files = append(files, u)
		}
	}
	return c.JSON(fiber.Map{"files": files})
}

// GetStudentUploadsAPI lists the uploads visible to one grade/class pair.
func GetStudentUploadsAPI(c *fiber.Ctx, st *store.Store) error {
	grade := c.Query("grade")
	classLetter := c.Query("classLetter")

	uploads, err := st.Uploads.List(c.Context())
	if err != nil {
		log.Printf("student uploads: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	files := []models.Upload{}
	for _, u := range uploads {
		if models.MatchesStudent(u.Grade, u.ClassLetter, grade, classLetter) {
			files = append(files, u)
		}
	}
	return c.JSON(fiber.Map{"files": files})
}

// DeleteUploadAPI releases the stored blob best-effort, then deletes the
// metadata record. Only a metadata delete failure surfaces as an error.
func DeleteUploadAPI(c *fiber.Ctx, st *store.Store, blobs storage.Resolver) error {
	id := c.Params("id")

	upload, found, err := store.FindByID(c.Context(), st.Uploads, id)
	if err != nil {
		log.Printf("delete upload: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	if found {
		blobs.Release(c.Context(), upload.Filename)
	}

	if err := st.Uploads.Delete(c.Context(), id); err != nil {
		log.Printf("delete upload: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"message": "File deleted"})
}
