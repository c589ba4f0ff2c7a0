package handler

import (
	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// UserHandler untuk manajemen user oleh admin.
type UserHandler struct {
	users      *usecase.UserAdminUsecase
	auth       *usecase.AuthUsecase
	attendance *usecase.AdminAttendanceUsecase
}

func NewUserHandler(users *usecase.UserAdminUsecase, auth *usecase.AuthUsecase, attendance *usecase.AdminAttendanceUsecase) *UserHandler {
	return &UserHandler{users: users, auth: auth, attendance: attendance}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req usecase.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data tidak valid")
	}

	session, err := h.auth.Register(req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil didaftarkan", session)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	list, err := h.users.ListUsers()
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Berhasil mengambil data user", list)
}

func (h *UserHandler) NonAdmin(c *fiber.Ctx) error {
	list, err := h.attendance.NonAdminUsers()
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Berhasil mengambil data user", list)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req usecase.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data tidak valid")
	}

	user, err := h.users.UpdateUser(c.Params("userId"), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Data user berhasil diperbarui", user)
}
