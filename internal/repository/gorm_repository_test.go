package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"e-presensi-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder menyimpan setiap SQL yang dibangkitkan gorm.
type sqlRecorder struct {
	mu   sync.Mutex
	stmt []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stmt = append(r.stmt, sql)
}

func (r *sqlRecorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.stmt
	r.stmt = nil
	return out
}

// dryRun membuka gorm tanpa koneksi: query hanya dibangun lalu dicatat.
func dryRun(t *testing.T, dialector gorm.Dialector) (Repositories, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(dialector, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 rec,
	})
	require.NoError(t, err)
	return NewRepositories(db), rec
}

func postgresDryRun(t *testing.T) (Repositories, *sqlRecorder) {
	return dryRun(t, postgres.New(postgres.Config{
		DSN:                  "host=127.0.0.1 user=presensi dbname=e_presensi sslmode=disable",
		PreferSimpleProtocol: true,
	}))
}

func mysqlDryRun(t *testing.T) (Repositories, *sqlRecorder) {
	return dryRun(t, mysql.New(mysql.Config{
		DSN:                       "presensi:rahasia@tcp(127.0.0.1:3306)/e_presensi?parseTime=true",
		SkipInitializeWithVersion: true,
	}))
}

func report(s string) *string { return &s }

func TestAttendanceUpsertSQL_Postgres(t *testing.T) {
	repos, rec := postgresDryRun(t)

	t.Run("laporan hanya menimpa daily_report", func(t *testing.T) {
		row := &model.AttendanceRecord{UserID: "u1", Date: "2024-03-04", WorkType: model.WorkTypeWFO, Status: model.StatusReportOnly, DailyReport: report("Menyusun laporan bulanan")}
		require.NoError(t, repos.Attendance.UpsertReport(row))

		stmts := rec.take()
		require.Len(t, stmts, 2)
		insert := stmts[0]
		assert.True(t, strings.HasPrefix(insert, `INSERT INTO "attendance_records"`), insert)
		assert.Contains(t, insert, `ON CONFLICT ("user_id","date") DO UPDATE SET "daily_report"="excluded"."daily_report","updated_at"="excluded"."updated_at"`)
		assert.NotContains(t, insert, `"status"="excluded"."status"`)
		assert.NotContains(t, insert, `"clock_in_time"="excluded"`)

		// baris dibaca ulang setelah upsert
		assert.Contains(t, stmts[1], `SELECT * FROM "attendance_records" WHERE (user_id = 'u1' AND date = '2024-03-04')`)
		assert.Contains(t, stmts[1], `"attendance_records"."deleted_at" IS NULL`)
	})

	t.Run("upsert admin menimpa semua field presensi", func(t *testing.T) {
		row := &model.AttendanceRecord{UserID: "u1", Date: "2024-03-04", WorkType: model.WorkTypeDL, Status: model.StatusCompleted}
		require.NoError(t, repos.Attendance.Upsert(row))

		insert := rec.take()[0]
		for _, col := range []string{"clock_in_time", "clock_out_time", "work_type", "status", "daily_report"} {
			assert.Contains(t, insert, `"`+col+`"="excluded"."`+col+`"`)
		}
	})
}

func TestCreateIfMissingSQL(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		repos, rec := postgresDryRun(t)

		p := model.PlaceholderProfile("user-abcdef")
		created, err := repos.Profiles.CreateIfMissing(&p)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Contains(t, rec.take()[0], `ON CONFLICT ("user_id") DO NOTHING`)

		_, err = repos.Roles.CreateIfMissing(&model.UserRole{UserID: "user-abcdef", Role: model.RoleUser})
		require.NoError(t, err)
		insert := rec.take()[0]
		assert.True(t, strings.HasPrefix(insert, `INSERT INTO "user_roles"`), insert)
		assert.Contains(t, insert, `ON CONFLICT ("user_id") DO NOTHING`)

		require.NoError(t, repos.Roles.Upsert("user-abcdef", model.RoleAdmin))
		assert.Contains(t, rec.take()[0], `ON CONFLICT ("user_id") DO UPDATE SET "role"="excluded"."role"`)
	})

	t.Run("mysql", func(t *testing.T) {
		repos, rec := mysqlDryRun(t)

		p := model.PlaceholderProfile("user-abcdef")
		_, err := repos.Profiles.CreateIfMissing(&p)
		require.NoError(t, err)
		insert := rec.take()[0]
		assert.True(t, strings.HasPrefix(insert, "INSERT INTO `profiles`"), insert)
		assert.Contains(t, insert, "ON DUPLICATE KEY UPDATE")

		row := &model.AttendanceRecord{UserID: "u1", Date: "2024-03-04", WorkType: model.WorkTypeWFO, Status: model.StatusReportOnly, DailyReport: report("Menyusun laporan bulanan")}
		require.NoError(t, repos.Attendance.UpsertReport(row))
		insert = rec.take()[0]
		assert.Contains(t, insert, "ON DUPLICATE KEY UPDATE")
		assert.Contains(t, insert, "`daily_report`")
		assert.NotContains(t, insert, "`status`=")
	})
}

func TestIntegrityQueriesSQL(t *testing.T) {
	repos, rec := postgresDryRun(t)

	_, err := repos.Attendance.OrphansOnDate("2024-03-04")
	require.NoError(t, err)
	orphans := rec.take()[0]
	assert.Contains(t, orphans, "LEFT JOIN profiles ON profiles.user_id = attendance_records.user_id AND profiles.deleted_at IS NULL")
	assert.Contains(t, orphans, "attendance_records.date = '2024-03-04' AND profiles.id IS NULL")

	_, err = repos.Attendance.InvalidTimeRangesOnDate("2024-03-04")
	require.NoError(t, err)
	assert.Contains(t, rec.take()[0], "clock_out_time <= clock_in_time")

	_, err = repos.Attendance.DuplicatesOnDate("2024-03-04")
	require.NoError(t, err)
	dup := rec.take()[0]
	assert.Contains(t, dup, `GROUP BY "user_id"`)
	assert.Contains(t, dup, "HAVING COUNT(*) > 1")

	_, err = repos.Profiles.CountIncomplete()
	require.NoError(t, err)
	count := rec.take()[0]
	assert.Contains(t, count, `SELECT count(*) FROM "profiles"`)
	assert.Contains(t, count, "full_name IS NULL OR full_name = ''")
	assert.Contains(t, count, `"profiles"."deleted_at" IS NULL`)
}
