package routes

import (
	"e-presensi-backend/internal/handler"
	"e-presensi-backend/internal/middleware"
	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, d Deps) {
	attendance := usecase.NewAttendanceUsecase(d.Repos.Attendance, d.Clock)
	hdl := handler.NewDashboardHandler(usecase.NewDashboardUsecase(d.Repos, attendance, d.Clock))

	// Role dibaca ulang dari database untuk memilih tampilan
	api := app.Group("/api/dashboard", middleware.NoStore, middleware.Auth(d.Auth), middleware.Role(d.Repos.Roles, model.RoleAdmin, model.RoleUser))
	api.Get("/", hdl.GetStats)
}
