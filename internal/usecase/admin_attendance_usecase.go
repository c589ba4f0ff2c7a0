package usecase

import (
	"errors"
	"strings"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/validation"
)

type AdminAttendanceUsecase struct {
	attendance repository.AttendanceRepository
	profiles   repository.ProfileRepository
	roles      repository.RoleRepository
	clock      Clock
}

func NewAdminAttendanceUsecase(attendance repository.AttendanceRepository, profiles repository.ProfileRepository, roles repository.RoleRepository, clock Clock) *AdminAttendanceUsecase {
	return &AdminAttendanceUsecase{attendance: attendance, profiles: profiles, roles: roles, clock: clock}
}

// ManualEntryRequest adalah isian form presensi manual. Jam dalam format "HH:mm".
type ManualEntryRequest struct {
	UserID      string `json:"user_id"`
	Date        string `json:"tanggal"`
	WorkType    string `json:"work_type"`
	ClockIn     string `json:"clock_in"`
	ClockOut    string `json:"clock_out"`
	DailyReport string `json:"daily_report"`
}

type ManualEntryResult struct {
	Record   *model.AttendanceRecord `json:"record"`
	IsUpdate bool                    `json:"is_update"`
}

type AttendanceRow struct {
	model.AttendanceRecord
	Profile *model.Profile `json:"profiles"`
}

type EditState struct {
	EditMode bool                    `json:"edit_mode"`
	Record   *model.AttendanceRecord `json:"record"`
	ClockIn  string                  `json:"clock_in"`
	ClockOut string                  `json:"clock_out"`
}

// NonAdminUsers mengembalikan profil yang bisa dipilih di form presensi manual.
func (u *AdminAttendanceUsecase) NonAdminUsers() ([]model.Profile, error) {
	profiles, err := u.profiles.GetAll()
	if err != nil {
		return nil, internal("Gagal mengambil data user", err)
	}

	adminIDs, err := u.roles.ListUserIDsByRole(model.RoleAdmin)
	if err != nil {
		// Tanpa data role, tampilkan semua user
		return profiles, nil
	}
	admins := make(map[string]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}

	users := make([]model.Profile, 0, len(profiles))
	for _, p := range profiles {
		if !admins[p.UserID] {
			users = append(users, p)
		}
	}
	return users, nil
}

// Existing mengisi form jika user sudah punya presensi di tanggal tersebut (mode edit).
func (u *AdminAttendanceUsecase) Existing(userID, date string) (*EditState, error) {
	if date == "" {
		date = u.clock.Today()
	}
	if err := validation.Date(date); err != nil {
		return nil, invalid(err)
	}

	rec, err := u.attendance.GetByUserAndDate(userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		return &EditState{}, nil
	}
	if err != nil {
		return nil, internal("Gagal mengecek data presensi", err)
	}

	state := &EditState{EditMode: true, Record: rec}
	if rec.ClockInTime != nil {
		state.ClockIn = rec.ClockInTime.In(u.clock.Location()).Format("15:04")
	}
	if rec.ClockOutTime != nil {
		state.ClockOut = rec.ClockOutTime.In(u.clock.Location()).Format("15:04")
	}
	return state, nil
}

// Save menyimpan presensi manual. complete=true mewajibkan jam pulang (tombol "Selesaikan").
func (u *AdminAttendanceUsecase) Save(req ManualEntryRequest, complete bool) (*ManualEntryResult, error) {
	// 1. Validasi form
	form := validation.AttendanceForm{
		UserID:   strings.TrimSpace(req.UserID),
		WorkType: req.WorkType,
		ClockIn:  req.ClockIn,
		ClockOut: req.ClockOut,
	}
	if err := validation.ValidateAttendanceForm(form); err != nil {
		return nil, invalid(err)
	}
	if err := validation.WorkType(req.WorkType); err != nil {
		return nil, invalid(err)
	}
	if complete && req.ClockOut == "" {
		return nil, badRequest("Jam pulang wajib diisi untuk menyelesaikan presensi")
	}

	date := req.Date
	if date == "" {
		date = u.clock.Today()
	}
	if err := validation.Date(date); err != nil {
		return nil, invalid(err)
	}

	// 2. User harus terdaftar
	if _, err := u.profiles.GetByUserID(form.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User tidak ditemukan")
		}
		return nil, internal("Gagal mengambil data user", err)
	}

	// 3. Cek apakah sudah ada (untuk info edit / tambah)
	_, err := u.attendance.GetByUserAndDate(form.UserID, date)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, internal("Gagal mengecek data presensi", err)
	}
	isUpdate := err == nil

	// 4. Susun record
	clockIn, err := u.clock.At(date, req.ClockIn)
	if err != nil {
		return nil, badRequest("Format jam harus HH:mm")
	}
	rec := &model.AttendanceRecord{
		UserID:      form.UserID,
		Date:        date,
		ClockInTime: &clockIn,
		WorkType:    req.WorkType,
		Status:      model.StatusActive,
	}
	if req.ClockOut != "" {
		clockOut, err := u.clock.At(date, req.ClockOut)
		if err != nil {
			return nil, badRequest("Format jam harus HH:mm")
		}
		rec.ClockOutTime = &clockOut
		rec.Status = model.StatusCompleted
	}
	if report := validation.SanitizeString(req.DailyReport); report != "" {
		rec.DailyReport = &report
	}

	if err := u.attendance.Upsert(rec); err != nil {
		return nil, internal("Gagal menyimpan presensi", err)
	}
	return &ManualEntryResult{Record: rec, IsUpdate: isUpdate}, nil
}

// ListByDate mengembalikan presensi satu tanggal beserta profil, terbaru di atas.
func (u *AdminAttendanceUsecase) ListByDate(date string) ([]AttendanceRow, error) {
	if date == "" {
		date = u.clock.Today()
	}
	if err := validation.Date(date); err != nil {
		return nil, invalid(err)
	}

	records, err := u.attendance.ListByDate(date)
	if err != nil {
		return nil, internal("Gagal mengambil data presensi", err)
	}
	profiles, err := u.profileMap()
	if err != nil {
		return nil, err
	}

	rows := make([]AttendanceRow, 0, len(records))
	for _, rec := range records {
		row := AttendanceRow{AttendanceRecord: rec}
		if p, ok := profiles[rec.UserID]; ok {
			row.Profile = &p
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (u *AdminAttendanceUsecase) profileMap() (map[string]model.Profile, error) {
	profiles, err := u.profiles.GetAll()
	if err != nil {
		return nil, internal("Gagal mengambil data profil", err)
	}
	m := make(map[string]model.Profile, len(profiles))
	for _, p := range profiles {
		m[p.UserID] = p
	}
	return m, nil
}
