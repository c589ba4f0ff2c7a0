package routes

import (
	"e-presensi-backend/internal/handler"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func setupReportRoutes(admin fiber.Router, d Deps) {
	hdl := handler.NewReportHandler(usecase.NewExportUsecase(d.Repos.Attendance, d.Repos.Profiles, d.Clock))
	admin.Get("/export", hdl.Export)
}
