package routes

import (
	"time"

	"e-presensi-backend/config"
	"e-presensi-backend/internal/middleware"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// Deps dibagi ke semua Setup*Routes.
type Deps struct {
	Config config.Config
	Repos  repository.Repositories
	Clock  usecase.Clock
	Auth   *usecase.AuthUsecase
}

func NewDeps(cfg config.Config, repos repository.Repositories, now func() time.Time) Deps {
	clock := usecase.NewClock(now, cfg.Location())
	return Deps{
		Config: cfg,
		Repos:  repos,
		Clock:  clock,
		Auth:   usecase.NewAuthUsecase(repos, cfg.JWTSecret, cfg.JWTTTL(), clock),
	}
}

// NewApp membuat fiber app dengan middleware global.
func NewApp(cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "e-presensi-backend",
		ErrorHandler: middleware.ErrorHandler(cfg.IsDevelopment()),
	})

	// Middleware Global
	app.Use(middleware.Recover(cfg.IsDevelopment()))
	app.Use(middleware.CORS(cfg.CORSOrigins))
	app.Use(middleware.Logger(cfg.Timezone))
	return app
}

func Setup(app *fiber.App, d Deps) {
	SetupHealthRoutes(app, d)
	SetupAuthRoutes(app, d)
	SetupDashboardRoutes(app, d)
	SetupProfileRoutes(app, d)
	SetupKehadiranRoutes(app, d)
	SetupAdminRoutes(app, d)
	// Web harus terakhir karena berisi handler 404
	SetupWebRoutes(app, d)
}
