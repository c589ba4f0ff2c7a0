package database

import (
	"errors"
	"log"

	"e-presensi-backend/config"
	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/usecase"
)

type SeedResult struct {
	AdminEmail string `json:"admin_email"`
	Created    bool   `json:"created"`
}

// SeedAll membuat akun admin pertama. Jika email sudah ada, role-nya dipastikan admin.
func SeedAll(cfg config.Config, repos repository.Repositories, auth *usecase.AuthUsecase) (*SeedResult, error) {
	if cfg.SeedAdminPassword == "" {
		return nil, errors.New("SEED_ADMIN_PASSWORD belum diset")
	}
	result := &SeedResult{AdminEmail: cfg.SeedAdminEmail}

	// 1. Cek akun admin
	user, err := repos.Users.GetByEmail(cfg.SeedAdminEmail)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// 2. Belum ada: daftarkan lengkap dengan profil
	if user == nil {
		_, err := auth.Register(usecase.RegisterInput{
			Email:      cfg.SeedAdminEmail,
			Password:   cfg.SeedAdminPassword,
			FullName:   "Administrator Utama",
			Position:   "Administrator",
			Department: model.DepartmentSekretariat,
			EmployeeID: "ADM-001",
			Role:       model.RoleAdmin,
		})
		if err != nil {
			return nil, err
		}
		result.Created = true
		log.Printf("[SEED] akun admin %s dibuat", cfg.SeedAdminEmail)
		return result, nil
	}

	// 3. Sudah ada: pastikan role admin dan password sesuai env
	if err := repos.Roles.Upsert(user.ID, model.RoleAdmin); err != nil {
		return nil, err
	}
	if err := auth.ChangePassword(user.ID, cfg.SeedAdminPassword); err != nil {
		return nil, err
	}
	log.Printf("[SEED] akun admin %s sudah ada, role dan password diperbarui", cfg.SeedAdminEmail)
	return result, nil
}
