package config

import (
	"fmt"
	"log"
	"time"

	"e-presensi-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB membuka koneksi sesuai DB_DRIVER (postgres / mysql) lalu menjalankan AutoMigrate.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: NewGormLogger(),
		NowFunc: func() time.Time {
			return time.Now().In(cfg.Location())
		},
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  PostgresDSN(cfg),
			PreferSimpleProtocol: true, // aman untuk PgBouncer Supabase (transaction pooling)
		})
	case "mysql":
		dialector = mysql.Open(MySQLDSN(cfg))
	default:
		return nil, fmt.Errorf("DB_DRIVER %q tidak didukung", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke database: %w", err)
	}
	log.Printf("✅ Koneksi Database (%s) Berhasil!", cfg.DBDriver)

	if err := TunePool(db); err != nil {
		log.Printf("pool tune err: %v", err)
	}

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
	if err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.UserRole{},
		&model.AttendanceRecord{},
		&model.RevokedToken{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate gagal: %w", err)
	}

	return db, nil
}

// PostgresDSN membangun DSN Supabase. DB_DSN, jika diisi, dipakai apa adanya.
func PostgresDSN(cfg Config) string {
	if cfg.DBDSN != "" {
		return cfg.DBDSN
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=e-presensi&options=-c%%20statement_timeout%%3D5000",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode,
	)
}

// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func MySQLDSN(cfg Config) string {
	if cfg.DBDSN != "" {
		return cfg.DBDSN
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)
}

func TunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}
