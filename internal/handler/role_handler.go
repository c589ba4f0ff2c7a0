package handler

import (
	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	users  *usecase.UserAdminUsecase
	repair *usecase.RepairUsecase
}

func NewRoleHandler(users *usecase.UserAdminUsecase, repair *usecase.RepairUsecase) *RoleHandler {
	return &RoleHandler{users: users, repair: repair}
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

func (h *RoleHandler) SetRole(c *fiber.Ctx) error {
	var req SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data tidak valid")
	}

	userID := c.Params("userId")
	if err := h.users.SetRole(userID, req.Role); err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Role berhasil diperbarui", fiber.Map{"user_id": userID, "role": req.Role})
}

func (h *RoleHandler) AssignMissing(c *fiber.Ctx) error {
	res, err := h.repair.AssignMissingRoles()
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Role berhasil dilengkapi", res)
}

// Repair melengkapi profil dan role semua user.
func (h *RoleHandler) Repair(c *fiber.Ctx) error {
	res, err := h.repair.Repair()
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Perbaikan data user selesai", res)
}
