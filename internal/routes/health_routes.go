package routes

import (
	"e-presensi-backend/internal/handler"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// SetupHealthRoutes: /health publik untuk liveness probe.
func SetupHealthRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewHealthHandler(usecase.NewHealthUsecase(d.Repos, d.Clock))
	app.Get("/health", hdl.Liveness)
}

func setupAdminHealthRoutes(admin fiber.Router, d Deps) {
	hdl := handler.NewHealthHandler(usecase.NewHealthUsecase(d.Repos, d.Clock))
	admin.Get("/health", hdl.Report)
}
