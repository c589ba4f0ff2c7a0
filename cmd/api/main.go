package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"e-presensi-backend/config"
	"e-presensi-backend/internal/database"
	"e-presensi-backend/internal/routes"
)

func main() {
	log.Println("1. Memulai aplikasi... Mencoba load .env...")
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	log.Println("2. Mencoba koneksi ke Database...")
	repos, closeDB, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer closeDB()
	log.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	deps := routes.NewDeps(cfg, repos, time.Now)
	app := routes.NewApp(cfg)
	routes.Setup(app, deps)

	// Shutdown rapi saat SIGINT / SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Mematikan server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown err: %v", err)
		}
	}()

	log.Printf("4. Server siap! Menunggu request di port :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("❌ server berhenti: %v", err)
	}
}
