package handler

import (
	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/middleware"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	dashboard, err := h.uc.Get(middleware.UserID(c), middleware.CurrentRole(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Berhasil mengambil statistik", dashboard)
}
