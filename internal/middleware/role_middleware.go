package middleware

import (
	"errors"

	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// Role membaca role terbaru dari database, bukan dari token, agar perubahan role langsung berlaku.
func Role(roles repository.RoleRepository, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := UserID(c)
		if userID == "" {
			return helper.Error(c, fiber.StatusForbidden, "Akses ditolak: Role tidak valid")
		}

		// 1. Role dari tabel user_roles, tidak ada baris = "user"
		r, err := roles.GetByUserID(userID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memvalidasi role")
		}
		userRole := model.RoleOf(r)
		c.Locals(LocalRole, userRole)

		// 2. Cocokkan dengan role yang diizinkan
		for _, role := range allowedRoles {
			if role == userRole {
				return c.Next()
			}
		}

		return helper.Error(c, fiber.StatusForbidden, "Akses ditolak: Anda bukan Admin")
	}
}
