package handler

import (
	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	uc *usecase.HealthUsecase
}

func NewHealthHandler(uc *usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	if err := h.uc.Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *HealthHandler) Report(c *fiber.Ctx) error {
	report, err := h.uc.Report()
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Pemeriksaan kesehatan sistem selesai", report)
}
