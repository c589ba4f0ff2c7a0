package memory

import (
	"testing"
	"time"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAttendance_UniquePerUserDate(t *testing.T) {
	repos := NewRepositories()

	rec := &model.AttendanceRecord{UserID: "u1", Date: "2024-03-04", WorkType: model.WorkTypeWFO, Status: model.StatusActive}
	require.NoError(t, repos.Attendance.Create(rec))
	assert.NotZero(t, rec.ID)

	dup := &model.AttendanceRecord{UserID: "u1", Date: "2024-03-04", WorkType: model.WorkTypeDL, Status: model.StatusActive}
	assert.ErrorIs(t, repos.Attendance.Create(dup), repository.ErrDuplicate)

	_, err := repos.Attendance.GetByUserAndDate("u1", "2024-03-05")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAttendance_RejectsMalformedRow(t *testing.T) {
	repos := NewRepositories()
	err := repos.Attendance.Create(&model.AttendanceRecord{UserID: "u1", Date: "04/03/2024", WorkType: "WFO", Status: "active"})
	assert.ErrorIs(t, err, model.ErrMalformedRow)

	err = repos.Attendance.Create(&model.AttendanceRecord{UserID: "u1", Date: "2024-03-04", WorkType: "WFH", Status: "active"})
	assert.ErrorIs(t, err, model.ErrMalformedRow)
}

func TestAttendance_UpsertReportTouchesOnlyReport(t *testing.T) {
	repos := NewRepositories()
	in := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Attendance.Create(&model.AttendanceRecord{
		UserID: "u1", Date: "2024-03-04", ClockInTime: &in, WorkType: model.WorkTypeDL, Status: model.StatusActive,
	}))

	rec := &model.AttendanceRecord{
		UserID: "u1", Date: "2024-03-04", WorkType: model.WorkTypeWFO, Status: model.StatusReportOnly,
		DailyReport: strPtr("Menyusun skema sertifikasi"),
	}
	require.NoError(t, repos.Attendance.UpsertReport(rec))

	assert.Equal(t, model.StatusActive, rec.Status)
	assert.Equal(t, model.WorkTypeDL, rec.WorkType)
	assert.Equal(t, "Menyusun skema sertifikasi", rec.Report())
	require.NotNil(t, rec.ClockInTime)
}

func TestAttendance_StatsAndRecentReports(t *testing.T) {
	repos := NewRepositories()
	for _, d := range []string{"2024-03-01", "2024-03-04", "2024-03-02"} {
		require.NoError(t, repos.Attendance.Create(&model.AttendanceRecord{
			UserID: "u1", Date: d, WorkType: model.WorkTypeWFO, Status: model.StatusCompleted,
			DailyReport: strPtr("laporan " + d),
		}))
	}
	require.NoError(t, repos.Attendance.Create(&model.AttendanceRecord{
		UserID: "u2", Date: "2024-03-01", WorkType: model.WorkTypeWFO, Status: model.StatusActive,
	}))

	stats, err := repos.Attendance.StatsByUser()
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, repository.UserAttendanceStat{UserID: "u1", Total: 3, LastDate: "2024-03-04"}, stats[0])

	recent, err := repos.Attendance.RecentReports("u1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2024-03-04", recent[0].Date)
	assert.Equal(t, "2024-03-02", recent[1].Date)

	empty, err := repos.Attendance.RecentReports("u2", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUsers_CreateWithProfileIsAtomic(t *testing.T) {
	repos := NewRepositories()

	require.NoError(t, repos.Profiles.Create(&model.Profile{UserID: "taken"}))

	err := repos.Users.CreateWithProfile(
		&model.User{ID: "taken", Email: "a@b.id", Password: "x"},
		&model.Profile{FullName: "Ani"},
		&model.UserRole{Role: model.RoleUser},
	)
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = repos.Users.GetByEmail("a@b.id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repos.Roles.GetByUserID("taken")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRoles_CreateIfMissingAndUpsert(t *testing.T) {
	repos := NewRepositories()

	created, err := repos.Roles.CreateIfMissing(&model.UserRole{UserID: "u1", Role: model.RoleUser})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repos.Roles.CreateIfMissing(&model.UserRole{UserID: "u1", Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, repos.Roles.Upsert("u1", model.RoleAdmin))
	admins, err := repos.Roles.ListUserIDsByRole(model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, admins)
}

func TestTokens_DeleteExpired(t *testing.T) {
	repos := NewRepositories()
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Tokens.Create(&model.RevokedToken{JTI: "old", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, repos.Tokens.Create(&model.RevokedToken{JTI: "new", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repos.Tokens.Create(&model.RevokedToken{JTI: "new", ExpiresAt: now.Add(time.Hour)}))

	n, err := repos.Tokens.DeleteExpired(now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	revoked, _ := repos.Tokens.IsRevoked("new")
	assert.True(t, revoked)
	revoked, _ = repos.Tokens.IsRevoked("old")
	assert.False(t, revoked)
}
