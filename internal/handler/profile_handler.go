package handler

import (
	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/middleware"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.uc.Get(middleware.UserID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Berhasil mengambil profil", profile)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req usecase.ProfileUpdateInput
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data tidak valid")
	}

	profile, err := h.uc.UpdateOwn(middleware.UserID(c), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Profil berhasil diperbarui", profile)
}
