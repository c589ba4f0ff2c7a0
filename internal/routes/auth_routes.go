package routes

import (
	"time"

	"e-presensi-backend/internal/handler"
	"e-presensi-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewAuthHandler(d.Auth)

	api := app.Group("/api/auth", middleware.NoStore)
	api.Post("/login", middleware.LoginLimiter(10, time.Minute), hdl.Login)
	api.Get("/session", middleware.Auth(d.Auth), hdl.Session)
	api.Post("/logout", middleware.Auth(d.Auth), hdl.Logout)
}
