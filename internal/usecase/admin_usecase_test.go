package usecase

import (
	"errors"
	"testing"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminSave(t *testing.T) {
	f := newFixture("2024-03-04", "10:00")
	f.addProfile(t, "user-111111", "Budi Santoso", model.RoleUser)
	uc := NewAdminAttendanceUsecase(f.repos.Attendance, f.repos.Profiles, f.repos.Roles, f.clock)

	req := ManualEntryRequest{UserID: "user-111111", Date: "2024-03-01", WorkType: model.WorkTypeWFO, ClockIn: "08:05"}

	res, err := uc.Save(req, false)
	require.NoError(t, err)
	assert.False(t, res.IsUpdate)
	assert.Equal(t, model.StatusActive, res.Record.Status)
	assert.Nil(t, res.Record.DailyReport)
	assert.Equal(t, 8, res.Record.ClockInTime.Hour())

	// Selesaikan tanpa jam pulang ditolak
	_, err = uc.Save(req, true)
	assertKind(t, err, KindValidation)

	req.ClockOut = "16:00"
	req.DailyReport = "  Input manual oleh admin  "
	res, err = uc.Save(req, true)
	require.NoError(t, err)
	assert.True(t, res.IsUpdate)
	assert.Equal(t, model.StatusCompleted, res.Record.Status)
	assert.Equal(t, "Input manual oleh admin", res.Record.Report())

	state, err := uc.Existing("user-111111", "2024-03-01")
	require.NoError(t, err)
	assert.True(t, state.EditMode)
	assert.Equal(t, "08:05", state.ClockIn)
	assert.Equal(t, "16:00", state.ClockOut)

	state, err = uc.Existing("user-111111", "2024-03-02")
	require.NoError(t, err)
	assert.False(t, state.EditMode)
}

func TestAdminSave_Rules(t *testing.T) {
	f := newFixture("2024-03-04", "10:00")
	f.addProfile(t, "user-111111", "Budi Santoso", "")
	uc := NewAdminAttendanceUsecase(f.repos.Attendance, f.repos.Profiles, f.repos.Roles, f.clock)

	cases := []struct {
		name string
		req  ManualEntryRequest
		kind Kind
	}{
		{"user placeholder", ManualEntryRequest{UserID: "loading", WorkType: "WFO", ClockIn: "08:00"}, KindValidation},
		{"tanpa tipe kerja", ManualEntryRequest{UserID: "user-111111", ClockIn: "08:00"}, KindValidation},
		{"tanpa jam masuk", ManualEntryRequest{UserID: "user-111111", WorkType: "WFO"}, KindValidation},
		{"jam pulang sebelum masuk", ManualEntryRequest{UserID: "user-111111", WorkType: "WFO", ClockIn: "09:00", ClockOut: "08:00"}, KindValidation},
		{"format jam", ManualEntryRequest{UserID: "user-111111", WorkType: "WFO", ClockIn: "8:00"}, KindValidation},
		{"user tidak ada", ManualEntryRequest{UserID: "user-999999", WorkType: "WFO", ClockIn: "08:00"}, KindNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Save(tc.req, false)
			assertKind(t, err, tc.kind)
		})
	}

	// Format jam diperiksa sebelum urutan jam
	_, err := uc.Save(ManualEntryRequest{UserID: "user-111111", WorkType: "WFO", ClockIn: "9:00", ClockOut: "10:00"}, false)
	var ue *Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "Format jam harus HH:mm", ue.Message)
}

func TestAdminListByDateAndNonAdmin(t *testing.T) {
	f := newFixture("2024-03-04", "10:00")
	f.addProfile(t, "user-111111", "Budi Santoso", model.RoleUser)
	f.addProfile(t, "user-222222", "Admin Utama", model.RoleAdmin)
	f.addProfile(t, "user-333333", "Citra Lestari", "")
	uc := NewAdminAttendanceUsecase(f.repos.Attendance, f.repos.Profiles, f.repos.Roles, f.clock)

	users, err := uc.NonAdminUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Budi Santoso", users[0].FullName)
	assert.Equal(t, "Citra Lestari", users[1].FullName)

	_, err = uc.Save(ManualEntryRequest{UserID: "user-111111", WorkType: "WFO", ClockIn: "08:00"}, false)
	require.NoError(t, err)
	require.NoError(t, f.repos.Attendance.Create(&model.AttendanceRecord{UserID: "ghost-000000", Date: "2024-03-04", WorkType: "WFO", Status: model.StatusReportOnly}))

	rows, err := uc.ListByDate("")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	byUser := map[string]AttendanceRow{}
	for _, r := range rows {
		byUser[r.UserID] = r
	}
	require.NotNil(t, byUser["user-111111"].Profile)
	assert.Equal(t, "Budi Santoso", byUser["user-111111"].Profile.FullName)
	assert.Nil(t, byUser["ghost-000000"].Profile)
}

func TestUserAdmin(t *testing.T) {
	f := newFixture("2024-03-04", "10:00")
	f.addProfile(t, "user-111111", "Budi Santoso", "")
	require.NoError(t, f.repos.Attendance.Create(&model.AttendanceRecord{UserID: "user-111111", Date: "2024-03-01", WorkType: "WFO", Status: model.StatusReportOnly}))
	require.NoError(t, f.repos.Attendance.Create(&model.AttendanceRecord{UserID: "user-111111", Date: "2024-03-04", WorkType: "DL", Status: model.StatusReportOnly}))
	uc := NewUserAdminUsecase(f.repos.Profiles, f.repos.Roles, f.repos.Attendance)

	list, err := uc.ListUsers()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.RoleUser, list[0].Role)
	assert.Equal(t, int64(2), list[0].TotalAttendance)
	assert.Equal(t, "2024-03-04", list[0].LastAttendance)

	updated, err := uc.UpdateUser("user-111111", UpdateUserInput{
		FullName: "Budi Santoso", Position: "Kepala Bagian", Department: model.DepartmentHukum, EmployeeID: "EMP-777", Role: model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	assert.Equal(t, "Kepala Bagian", updated.Position)

	_, err = uc.UpdateUser("user-111111", UpdateUserInput{FullName: "B", Position: "Staff", Department: "Umum", EmployeeID: "EMP-777"})
	assertKind(t, err, KindValidation)

	_, err = uc.UpdateUser("user-999999", UpdateUserInput{FullName: "Budi", Position: "Staff", Department: "Umum", EmployeeID: "EMP-777"})
	assertKind(t, err, KindNotFound)

	require.NoError(t, uc.SetRole("user-111111", model.RoleUser))
	assertKind(t, uc.SetRole("user-111111", "superadmin"), KindValidation)
	assertKind(t, uc.SetRole("user-999999", model.RoleUser), KindNotFound)
}

// failingProfiles menggagalkan pembuatan profil untuk satu user.
type failingProfiles struct {
	repository.ProfileRepository
	failFor string
}

func (p failingProfiles) CreateIfMissing(profile *model.Profile) (bool, error) {
	if profile.UserID == p.failFor {
		return false, errors.New("koneksi terputus")
	}
	return p.ProfileRepository.CreateIfMissing(profile)
}

func TestRepair(t *testing.T) {
	f := newFixture("2024-03-04", "10:00")
	f.addProfile(t, "user-111111", "Budi Santoso", "")
	require.NoError(t, f.repos.Attendance.Create(&model.AttendanceRecord{UserID: "user-abcdef", Date: "2024-03-01", WorkType: "WFO", Status: model.StatusReportOnly}))
	_, err := f.repos.Roles.CreateIfMissing(&model.UserRole{UserID: "user-222222", Role: model.RoleAdmin})
	require.NoError(t, err)

	uc := NewRepairUsecase(f.repos.Attendance, f.repos.Profiles, f.repos.Roles)
	res, err := uc.Repair()
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalUsers)
	assert.Equal(t, 2, res.CreatedProfiles)
	assert.Equal(t, 2, res.CreatedRoles)
	assert.Empty(t, res.Errors)

	p, err := f.repos.Profiles.GetByUserID("user-abcdef")
	require.NoError(t, err)
	assert.Equal(t, "User-abcdef", p.FullName)
	assert.Equal(t, "Staff", p.Position)
	assert.Equal(t, model.DepartmentUmum, p.Department)
	assert.Equal(t, "EMP-ABCDEF", p.EmployeeID)

	role, err := f.repos.Roles.GetByUserID("user-222222")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role.Role)

	// Dijalankan ulang tidak membuat apa pun
	res, err = uc.Repair()
	require.NoError(t, err)
	assert.Zero(t, res.CreatedProfiles)
	assert.Zero(t, res.CreatedRoles)
}

func TestRepair_CollectsErrors(t *testing.T) {
	f := newFixture("2024-03-04", "10:00")
	for _, id := range []string{"user-aaaaaa", "user-bbbbbb"} {
		require.NoError(t, f.repos.Attendance.Create(&model.AttendanceRecord{UserID: id, Date: "2024-03-01", WorkType: "WFO", Status: model.StatusReportOnly}))
	}

	uc := NewRepairUsecase(f.repos.Attendance, failingProfiles{f.repos.Profiles, "user-aaaaaa"}, f.repos.Roles)
	res, err := uc.Repair()
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalUsers)
	assert.Equal(t, 1, res.CreatedProfiles)
	assert.Equal(t, 2, res.CreatedRoles)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "user-aaaaaa")
}

func TestAssignMissingRoles(t *testing.T) {
	f := newFixture("2024-03-04", "10:00")
	f.addProfile(t, "user-111111", "Budi Santoso", model.RoleAdmin)
	f.addProfile(t, "user-222222", "Citra Lestari", "")
	f.addProfile(t, "user-333333", "Dewi Anggraini", "")

	uc := NewRepairUsecase(f.repos.Attendance, f.repos.Profiles, f.repos.Roles)
	res, err := uc.AssignMissingRoles()
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalProfiles)
	assert.Equal(t, 2, res.Assigned)

	role, err := f.repos.Roles.GetByUserID("user-111111")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role.Role)
}

func TestHealth(t *testing.T) {
	f := newFixture("2024-03-04", "10:00")
	uc := NewHealthUsecase(f.repos, f.clock)

	sys := uc.System()
	assert.True(t, sys.IsValid)
	assert.Contains(t, sys.Warnings, "Tidak ada user dengan role admin")

	f.addProfile(t, "user-111111", "Budi Santoso", model.RoleAdmin)
	in, _ := f.clock.At("2024-03-04", "09:00")
	out, _ := f.clock.At("2024-03-04", "08:00")
	require.NoError(t, f.repos.Attendance.Create(&model.AttendanceRecord{UserID: "user-111111", Date: "2024-03-04", ClockInTime: &in, ClockOutTime: &out, WorkType: "WFO", Status: model.StatusCompleted}))
	require.NoError(t, f.repos.Attendance.Create(&model.AttendanceRecord{UserID: "ghost-000000", Date: "2024-03-04", WorkType: "WFO", Status: model.StatusReportOnly}))

	sys = uc.System()
	assert.True(t, sys.IsValid)
	assert.Empty(t, sys.Warnings)

	integrity, err := uc.AttendanceIntegrity("2024-03-04")
	require.NoError(t, err)
	assert.False(t, integrity.IsValid)
	assert.Len(t, integrity.Errors, 1)
	assert.Len(t, integrity.Warnings, 1)

	report, err := uc.Report()
	require.NoError(t, err)
	assert.Equal(t, "error", report.Status)

	_, err = uc.AttendanceIntegrity("kemarin")
	assertKind(t, err, KindValidation)
}

func TestExport(t *testing.T) {
	f := newFixture("2024-04-01", "09:00")
	f.addProfile(t, "user-aaaaaa", "Andi Wijaya", "")
	for _, d := range []string{"2024-03-04", "2024-03-05"} {
		require.NoError(t, f.repos.Attendance.Create(&model.AttendanceRecord{UserID: "user-aaaaaa", Date: d, WorkType: "WFO", Status: model.StatusReportOnly}))
	}
	require.NoError(t, f.repos.Attendance.Create(&model.AttendanceRecord{UserID: "user-bbbbbb", Date: "2024-03-05", WorkType: "DL", Status: model.StatusReportOnly}))

	uc := NewExportUsecase(f.repos.Attendance, f.repos.Profiles, f.clock)
	file, err := uc.Export("2024-03", "", "")
	require.NoError(t, err)
	assert.Equal(t, "rekap-presensi-bnsp-Maret-2024.xlsx", file.Filename)
	assert.Equal(t, 2, file.Users)
	assert.Equal(t, 3, file.Records)
	assert.NotEmpty(t, file.Content)

	_, err = uc.Export("", "2024", "2")
	assertKind(t, err, KindNotFound)
	assert.Contains(t, err.Error(), "Februari 2024")

	_, err = uc.Export("", "2019", "all")
	assertKind(t, err, KindValidation)
}

func TestProfileAndDashboard(t *testing.T) {
	f := newFixture("2024-03-04", "07:55")
	profiles := NewProfileUsecase(f.repos.Profiles)

	p, err := profiles.Get("user-abcdef")
	require.NoError(t, err)
	assert.Equal(t, "User-abcdef", p.FullName)

	p, err = profiles.UpdateOwn("user-abcdef", ProfileUpdateInput{FullName: "Eka Putri", Position: "Analis", Department: model.DepartmentSertifikasi})
	require.NoError(t, err)
	assert.Equal(t, "Eka Putri", p.FullName)
	assert.Equal(t, "EMP-ABCDEF", p.EmployeeID)

	_, err = profiles.UpdateOwn("user-abcdef", ProfileUpdateInput{FullName: "Eka Putri", Position: "Analis", Department: "Keuangan"})
	assertKind(t, err, KindValidation)

	attendance := NewAttendanceUsecase(f.repos.Attendance, f.clock)
	_, err = attendance.ClockIn("user-abcdef", model.WorkTypeWFO)
	require.NoError(t, err)

	dash := NewDashboardUsecase(f.repos, attendance, f.clock)
	staff, err := dash.Get("user-abcdef", model.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, ViewStaff, staff.View)
	require.NotNil(t, staff.Today)
	assert.Nil(t, staff.Stats)

	admin, err := dash.Get("admin-1", model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, ViewAdmin, admin.View)
	require.NotNil(t, admin.Stats)
	assert.Equal(t, int64(1), admin.Stats.TotalPegawai)
	assert.Equal(t, int64(1), admin.Stats.HariIni[model.StatusActive])
	assert.Equal(t, int64(1), admin.Stats.BulanIni[model.WorkTypeWFO])
}
