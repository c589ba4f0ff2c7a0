package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET wajib diisi di luar APP_ENV=development")

type Config struct {
	AppEnv   string
	AppPort  string
	Timezone string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBDSN      string

	JWTSecret   string
	JWTTTLHours int

	CORSOrigins string
	WebDir      string

	SeedAdminEmail    string
	SeedAdminPassword string
}

// LoadConfig membaca .env (jika ada) lalu environment variables sistem.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	cfg := Config{
		AppEnv:   GetEnv("APP_ENV", "production"),
		AppPort:  GetEnv("APP_PORT", "3000"),
		Timezone: GetEnv("APP_TIMEZONE", "Asia/Jakarta"),

		DBDriver:   strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
		DBHost:     GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", ""),
		DBName:     GetEnv("DB_NAME", "e_presensi"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),
		DBDSN:      GetEnv("DB_DSN", ""),

		JWTSecret:   GetEnv("JWT_SECRET", ""),
		JWTTTLHours: GetEnvAsInt("JWT_TTL_HOURS", 24),

		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
		WebDir:      GetEnv("WEB_DIR", "./web/dist"),

		SeedAdminEmail:    GetEnv("SEED_ADMIN_EMAIL", "admin@bnsp.go.id"),
		SeedAdminPassword: GetEnv("SEED_ADMIN_PASSWORD", ""),
	}

	if cfg.JWTSecret == "" && cfg.IsDevelopment() {
		// Kunci acak per proses, token lama tidak berlaku setelah restart
		cfg.JWTSecret = uuid.NewString()
		log.Println("Warning: JWT_SECRET kosong, memakai kunci sementara (development)")
	}
	return cfg
}

// Validate menolak konfigurasi yang tidak aman untuk dijalankan.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// Location mengembalikan zona waktu kantor. Jika nama zona tidak dikenal, fallback ke WIB (UTC+7).
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: zona waktu %q tidak dikenal, memakai WIB", c.Timezone)
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
