package routes

import (
	"e-presensi-backend/internal/handler"
	"e-presensi-backend/internal/middleware"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewProfileHandler(usecase.NewProfileUsecase(d.Repos.Profiles))

	api := app.Group("/api/profile", middleware.NoStore, middleware.Auth(d.Auth))
	api.Get("/", hdl.Get)
	api.Put("/", hdl.Update)
}
