package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cois1702/trio-homework-app/app/config"
	"github.com/cois1702/trio-homework-app/app/validation"
)

// Server-side admin auth is opt-in: it only engages when admin credentials
// are configured. Without them the admin endpoints stay open, matching the
// original deployment where the admin check lived in the front end only.

type adminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AdminLoginAPI exchanges the configured admin credentials for a bearer
// token accepted by AdminMiddleware.
func AdminLoginAPI(c *fiber.Ctx, cfg *config.Config) error {
	if !cfg.AdminConfigured() {
		return c.JSON(fiber.Map{"error": "Admin login is not configured"})
	}

	type AdminLoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(req); err != nil {
		return c.JSON(fiber.Map{"error": "All fields are required"})
	}

	if req.Email != cfg.AdminEmail || !checkAdminPassword(cfg, req.Password) {
		return c.JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := generateAdminToken(cfg, req.Email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	return c.JSON(fiber.Map{"token": token})
}

// AdminMiddleware guards the mutating admin endpoints when admin
// credentials are configured; otherwise it passes everything through.
func AdminMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.AdminConfigured() {
			return c.Next()
		}
		if c.Path() == "/api/admin/login" {
			return c.Next()
		}

		var tokenString string
		if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		if err := validateAdminToken(cfg, tokenString); err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Next()
	}
}

func checkAdminPassword(cfg *config.Config, password string) bool {
	if cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return password == cfg.AdminPassword
}

func generateAdminToken(cfg *config.Config, email string) (string, error) {
	claims := adminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "trio-homework-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func validateAdminToken(cfg *config.Config, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrInvalidKey
	}
	return nil
}
