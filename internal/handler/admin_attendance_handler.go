package handler

import (
	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AdminAttendanceHandler struct {
	uc *usecase.AdminAttendanceUsecase
}

func NewAdminAttendanceHandler(uc *usecase.AdminAttendanceUsecase) *AdminAttendanceHandler {
	return &AdminAttendanceHandler{uc: uc}
}

// List: ?tanggal=YYYY-MM-DD, default hari ini
func (h *AdminAttendanceHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.ListByDate(c.Query("tanggal"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Berhasil mengambil data presensi", rows)
}

func (h *AdminAttendanceHandler) Existing(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Harap pilih user terlebih dahulu")
	}

	state, err := h.uc.Existing(userID, c.Query("tanggal"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Berhasil mengecek data presensi", state)
}

// Save: ?complete=true untuk menyelesaikan presensi (jam pulang wajib)
func (h *AdminAttendanceHandler) Save(c *fiber.Ctx) error {
	var req usecase.ManualEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data tidak valid")
	}

	res, err := h.uc.Save(req, c.QueryBool("complete"))
	if err != nil {
		return helper.FromError(c, err)
	}
	if res.IsUpdate {
		return helper.Success(c, "Presensi berhasil diperbarui", res)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Presensi berhasil ditambahkan", res)
}
