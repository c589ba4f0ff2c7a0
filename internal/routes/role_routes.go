package routes

import (
	"e-presensi-backend/internal/handler"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func setupRoleRoutes(admin fiber.Router, d Deps) {
	users := usecase.NewUserAdminUsecase(d.Repos.Profiles, d.Repos.Roles, d.Repos.Attendance)
	repair := usecase.NewRepairUsecase(d.Repos.Attendance, d.Repos.Profiles, d.Repos.Roles)
	hdl := handler.NewRoleHandler(users, repair)

	admin.Put("/users/:userId/role", hdl.SetRole)
	admin.Post("/roles/assign-missing", hdl.AssignMissing)
	admin.Post("/repair", hdl.Repair)
}
