package middleware

import (
	"strings"

	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalClaims = "claims"
)

func Auth(auth *usecase.AuthUsecase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil token dari Header Authorization
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
		}

		// Format header: "Bearer <token>"
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" || tokenString == authHeader {
			return helper.Error(c, fiber.StatusUnauthorized, "Format token tidak valid")
		}

		// 2. Parse, validasi, dan cek token yang sudah logout
		claims, err := auth.Verify(tokenString)
		if err != nil {
			return helper.FromError(c, err)
		}

		// 3. Simpan data user ke Context agar bisa dipakai di Handler
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalClaims, claims)

		return c.Next()
	}
}

// UserID mengambil user id yang diset Auth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

func Claims(c *fiber.Ctx) *usecase.Claims {
	claims, _ := c.Locals(LocalClaims).(*usecase.Claims)
	return claims
}

func CurrentRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}
