package main

import (
	"log"
	"time"

	"e-presensi-backend/config"
	"e-presensi-backend/internal/database"
	"e-presensi-backend/internal/usecase"
)

func main() {
	log.Println("🌱 Memulai Database Seeding...")
	cfg := config.LoadConfig()

	repos, closeDB, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer closeDB()

	auth := usecase.NewAuthUsecase(repos, cfg.JWTSecret, cfg.JWTTTL(), usecase.NewClock(time.Now, cfg.Location()))

	log.Println("🚀 Menjalankan SeedAll...")
	if _, err := database.SeedAll(cfg, repos, auth); err != nil {
		log.Fatalf("❌ Seeding gagal: %v", err)
	}
	log.Println("✅ Seeding Selesai!")
}
