package handler

import (
	"fmt"

	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	export *usecase.ExportUsecase
}

func NewReportHandler(export *usecase.ExportUsecase) *ReportHandler {
	return &ReportHandler{export: export}
}

// Export mengirim rekap Excel: ?periode=YYYY-MM atau ?tahun=&bulan= (bulan=all untuk setahun)
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	file, err := h.export.Export(c.Query("periode"), c.Query("tahun"), c.Query("bulan"))
	if err != nil {
		return helper.FromError(c, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(fiber.StatusOK).Send(file.Content)
}
