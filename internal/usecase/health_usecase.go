package usecase

import (
	"fmt"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/validation"
)

var requiredTables = []string{"profiles", "attendance_records", "user_roles"}

type HealthUsecase struct {
	repos repository.Repositories
	clock Clock
}

func NewHealthUsecase(repos repository.Repositories, clock Clock) *HealthUsecase {
	return &HealthUsecase{repos: repos, clock: clock}
}

// ValidationResult: IsValid false hanya jika ada Errors; Warnings tidak menggagalkan.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type HealthReport struct {
	Status     string            `json:"status"`
	CheckedAt  string            `json:"checked_at"`
	System     *ValidationResult `json:"system"`
	Attendance *ValidationResult `json:"attendance"`
}

func newValidationResult() *ValidationResult {
	return &ValidationResult{IsValid: true, Errors: []string{}, Warnings: []string{}}
}

func (r *ValidationResult) fail(msg string) {
	r.IsValid = false
	r.Errors = append(r.Errors, msg)
}

func (r *ValidationResult) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Ping dipakai oleh /health publik.
func (u *HealthUsecase) Ping() error {
	if err := u.repos.System.Ping(); err != nil {
		return internal("Database tidak dapat dihubungi", err)
	}
	return nil
}

// System memeriksa koneksi, tabel inti, admin, dan kelengkapan profil.
func (u *HealthUsecase) System() *ValidationResult {
	res := newValidationResult()

	// 1. Koneksi database
	if err := u.repos.System.Ping(); err != nil {
		res.fail(fmt.Sprintf("Koneksi database gagal: %v", err))
		return res
	}

	// 2. Tabel inti bisa diakses
	for _, table := range requiredTables {
		if err := u.repos.System.TableAccessible(table); err != nil {
			res.fail(fmt.Sprintf("Tabel %s tidak dapat diakses: %v", table, err))
		}
	}

	// 3. Minimal satu admin
	admins, err := u.repos.Roles.ListUserIDsByRole(model.RoleAdmin)
	switch {
	case err != nil:
		res.fail(fmt.Sprintf("Gagal memeriksa role admin: %v", err))
	case len(admins) == 0:
		res.warn("Tidak ada user dengan role admin")
	}

	// 4. Profil tidak lengkap
	incomplete, err := u.repos.Profiles.CountIncomplete()
	switch {
	case err != nil:
		res.fail(fmt.Sprintf("Gagal memeriksa kelengkapan profil: %v", err))
	case incomplete > 0:
		res.warn(fmt.Sprintf("%d profil belum lengkap", incomplete))
	}

	return res
}

// AttendanceIntegrity memeriksa data presensi pada satu tanggal.
func (u *HealthUsecase) AttendanceIntegrity(date string) (*ValidationResult, error) {
	if date == "" {
		date = u.clock.Today()
	}
	if err := validation.Date(date); err != nil {
		return nil, invalid(err)
	}

	res := newValidationResult()

	dups, err := u.repos.Attendance.DuplicatesOnDate(date)
	if err != nil {
		res.fail(fmt.Sprintf("Gagal memeriksa duplikasi: %v", err))
	} else if len(dups) > 0 {
		res.fail(fmt.Sprintf("Ditemukan %d user dengan presensi ganda pada %s", len(dups), date))
	}

	invalidRanges, err := u.repos.Attendance.InvalidTimeRangesOnDate(date)
	if err != nil {
		res.fail(fmt.Sprintf("Gagal memeriksa rentang waktu: %v", err))
	} else if len(invalidRanges) > 0 {
		res.fail(fmt.Sprintf("Ditemukan %d presensi dengan jam pulang tidak valid", len(invalidRanges)))
	}

	orphans, err := u.repos.Attendance.OrphansOnDate(date)
	if err != nil {
		res.fail(fmt.Sprintf("Gagal memeriksa profil presensi: %v", err))
	} else if len(orphans) > 0 {
		res.warn(fmt.Sprintf("Ditemukan %d presensi tanpa profil", len(orphans)))
	}

	return res, nil
}

// Report menggabungkan pemeriksaan sistem dan presensi hari ini.
func (u *HealthUsecase) Report() (*HealthReport, error) {
	system := u.System()
	attendance, err := u.AttendanceIntegrity("")
	if err != nil {
		return nil, err
	}

	status := "ok"
	switch {
	case !system.IsValid || !attendance.IsValid:
		status = "error"
	case len(system.Warnings) > 0 || len(attendance.Warnings) > 0:
		status = "warning"
	}

	return &HealthReport{
		Status:     status,
		CheckedAt:  u.clock.Now().Format("2006-01-02 15:04:05"),
		System:     system,
		Attendance: attendance,
	}, nil
}
