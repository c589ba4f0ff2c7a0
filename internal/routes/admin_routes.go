package routes

import (
	"e-presensi-backend/internal/handler"
	"e-presensi-backend/internal/middleware"
	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes: semua route /api/admin lewat satu group Auth + Role admin.
func SetupAdminRoutes(app *fiber.App, d Deps) {
	admin := app.Group("/api/admin", middleware.NoStore, middleware.Auth(d.Auth), middleware.Role(d.Repos.Roles, model.RoleAdmin))

	setupUserRoutes(admin, d)
	setupAdminAttendanceRoutes(admin, d)
	setupRoleRoutes(admin, d)
	setupReportRoutes(admin, d)
	setupAdminHealthRoutes(admin, d)
}

func setupUserRoutes(admin fiber.Router, d Deps) {
	users := usecase.NewUserAdminUsecase(d.Repos.Profiles, d.Repos.Roles, d.Repos.Attendance)
	attendance := usecase.NewAdminAttendanceUsecase(d.Repos.Attendance, d.Repos.Profiles, d.Repos.Roles, d.Clock)
	hdl := handler.NewUserHandler(users, d.Auth, attendance)

	u := admin.Group("/users")
	u.Post("/", hdl.Register)
	u.Get("/", hdl.List)
	u.Get("/non-admin", hdl.NonAdmin)
	u.Put("/:userId", hdl.Update)
}

func setupAdminAttendanceRoutes(admin fiber.Router, d Deps) {
	hdl := handler.NewAdminAttendanceHandler(usecase.NewAdminAttendanceUsecase(d.Repos.Attendance, d.Repos.Profiles, d.Repos.Roles, d.Clock))

	a := admin.Group("/attendance")
	a.Get("/", hdl.List)
	a.Get("/existing", hdl.Existing)
	a.Post("/", hdl.Save)
}
