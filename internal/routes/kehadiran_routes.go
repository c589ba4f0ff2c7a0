package routes

import (
	"e-presensi-backend/internal/handler"
	"e-presensi-backend/internal/middleware"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupKehadiranRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewKehadiranHandler(usecase.NewAttendanceUsecase(d.Repos.Attendance, d.Clock))

	// Grouping route khusus presensi
	api := app.Group("/api/attendance", middleware.NoStore, middleware.Auth(d.Auth))

	api.Get("/today", hdl.Today)
	api.Post("/clock-in", hdl.ClockIn)
	api.Post("/clock-out", hdl.ClockOut)
	api.Post("/report", hdl.FileReport)
	api.Get("/reports", hdl.Reports)
	api.Get("/history", hdl.History)
}
