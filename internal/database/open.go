package database

import (
	"log"

	"e-presensi-backend/config"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/repository/memory"
)

// Open memilih penyimpanan sesuai DB_DRIVER. Fungsi close wajib dipanggil saat shutdown.
func Open(cfg config.Config) (repository.Repositories, func() error, error) {
	if cfg.DBDriver == "memory" {
		log.Println("⚠️ DB_DRIVER=memory: data hilang saat aplikasi berhenti")
		return memory.NewRepositories(), func() error { return nil }, nil
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return repository.Repositories{}, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return repository.Repositories{}, nil, err
	}
	return repository.NewRepositories(db), sqlDB.Close, nil
}
