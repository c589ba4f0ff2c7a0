package handler

import (
	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/middleware"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type KehadiranHandler struct {
	uc *usecase.AttendanceUsecase
}

func NewKehadiranHandler(uc *usecase.AttendanceUsecase) *KehadiranHandler {
	return &KehadiranHandler{uc: uc}
}

type ClockInRequest struct {
	WorkType string `json:"work_type"`
}

type ClockOutRequest struct {
	DailyReport string `json:"daily_report"`
}

type ReportRequest struct {
	Date        string `json:"tanggal"`
	DailyReport string `json:"daily_report"`
}

func (h *KehadiranHandler) Today(c *fiber.Ctx) error {
	res, err := h.uc.Today(middleware.UserID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Berhasil mengambil presensi hari ini", res)
}

func (h *KehadiranHandler) ClockIn(c *fiber.Ctx) error {
	var req ClockInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data tidak valid")
	}

	res, err := h.uc.ClockIn(middleware.UserID(c), req.WorkType)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, res.Classification.Message, res)
}

func (h *KehadiranHandler) ClockOut(c *fiber.Ctx) error {
	var req ClockOutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Data tidak valid")
		}
	}

	res, err := h.uc.ClockOut(middleware.UserID(c), req.DailyReport)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, res.Classification.Message, res)
}

func (h *KehadiranHandler) FileReport(c *fiber.Ctx) error {
	var req ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data tidak valid")
	}

	res, err := h.uc.FileReport(middleware.UserID(c), req.Date, req.DailyReport)
	if err != nil {
		return helper.FromError(c, err)
	}
	if res.Created {
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Laporan kegiatan berhasil disimpan", res)
	}
	return helper.Success(c, "Laporan kegiatan berhasil diperbarui", res)
}

func (h *KehadiranHandler) Reports(c *fiber.Ctx) error {
	list, err := h.uc.RecentReports(middleware.UserID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Berhasil mengambil laporan kegiatan", list)
}

// History: ?bulan=YYYY-MM, default bulan ini
func (h *KehadiranHandler) History(c *fiber.Ctx) error {
	res, err := h.uc.History(middleware.UserID(c), c.Query("bulan"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Berhasil mengambil riwayat presensi", res)
}
