package usecase

import (
	"testing"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/workhours"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReport = "Mereview dokumen skema sertifikasi"

func TestClockIn(t *testing.T) {
	f := newFixture("2024-03-04", "08:15")
	uc := NewAttendanceUsecase(f.repos.Attendance, f.clock)

	res, err := uc.ClockIn("u1", model.WorkTypeWFO)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", res.Record.Date)
	assert.Equal(t, model.StatusActive, res.Record.Status)
	assert.True(t, res.Classification.IsLate)
	assert.Equal(t, workhours.MsgLate, res.Classification.Message)

	_, err = uc.ClockIn("u1", model.WorkTypeDL)
	assertKind(t, err, KindConflict)

	_, err = uc.ClockIn("u2", "WFH")
	assertKind(t, err, KindValidation)
}

func TestClockOut(t *testing.T) {
	f := newFixture("2024-03-04", "07:50")
	uc := NewAttendanceUsecase(f.repos.Attendance, f.clock)

	t.Run("tanpa absen masuk", func(t *testing.T) {
		_, err := uc.ClockOut("u1", validReport)
		assertKind(t, err, KindValidation)
	})

	_, err := uc.ClockIn("u1", model.WorkTypeWFO)
	require.NoError(t, err)

	t.Run("jam pulang sama dengan jam masuk", func(t *testing.T) {
		_, err := uc.ClockOut("u1", validReport)
		assertKind(t, err, KindValidation)

		rec, err := f.repos.Attendance.GetByUserAndDate("u1", "2024-03-04")
		require.NoError(t, err)
		assert.Nil(t, rec.ClockOutTime)
		assert.Nil(t, rec.DailyReport)
	})

	f.now.set("2024-03-04", "15:45")

	t.Run("tanpa laporan", func(t *testing.T) {
		_, err := uc.ClockOut("u1", "   ")
		assertKind(t, err, KindValidation)
	})

	t.Run("laporan terlalu pendek", func(t *testing.T) {
		_, err := uc.ClockOut("u1", "rapat")
		assertKind(t, err, KindValidation)
	})

	t.Run("berhasil", func(t *testing.T) {
		res, err := uc.ClockOut("u1", validReport)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, res.Record.Status)
		assert.Equal(t, validReport, res.Record.Report())
		assert.Equal(t, workhours.MsgClockOutOK, res.Classification.Message)
	})

	t.Run("sudah absen pulang", func(t *testing.T) {
		_, err := uc.ClockOut("u1", validReport)
		assertKind(t, err, KindConflict)
	})
}

func TestReportOnlyFlow(t *testing.T) {
	f := newFixture("2024-03-04", "07:30")
	uc := NewAttendanceUsecase(f.repos.Attendance, f.clock)

	// 1. Laporan tanpa absen membuat baris report_only
	rep, err := uc.FileReport("u1", "", validReport)
	require.NoError(t, err)
	assert.True(t, rep.Created)
	assert.Equal(t, model.StatusReportOnly, rep.Record.Status)
	assert.Equal(t, model.WorkTypeWFO, rep.Record.WorkType)
	assert.Nil(t, rep.Record.ClockInTime)

	// 2. Absen masuk mengisi baris yang sama
	f.now.set("2024-03-04", "07:58")
	in, err := uc.ClockIn("u1", model.WorkTypeDL)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, in.Record.Status)
	assert.Equal(t, model.WorkTypeDL, in.Record.WorkType)
	assert.Equal(t, validReport, in.Record.Report())
	assert.False(t, in.Classification.IsLate)

	// 3. Laporan berikutnya hanya mengubah laporan
	updated := "Menyusun laporan bulanan unit kerja"
	rep, err = uc.FileReport("u1", "2024-03-04", updated)
	require.NoError(t, err)
	assert.False(t, rep.Created)
	assert.Equal(t, model.StatusActive, rep.Record.Status)
	assert.Equal(t, model.WorkTypeDL, rep.Record.WorkType)
	assert.Equal(t, updated, rep.Record.Report())

	// 4. Absen pulang memakai laporan tersimpan
	f.now.set("2024-03-04", "16:30")
	out, err := uc.ClockOut("u1", "")
	require.NoError(t, err)
	assert.Equal(t, updated, out.Record.Report())
	assert.Equal(t, model.StatusCompleted, out.Record.Status)
}

func TestFileReport_Rules(t *testing.T) {
	f := newFixture("2024-03-04", "10:00")
	uc := NewAttendanceUsecase(f.repos.Attendance, f.clock)

	_, err := uc.FileReport("u1", "2024-03-05", validReport)
	assertKind(t, err, KindValidation)

	_, err = uc.FileReport("u1", "04-03-2024", validReport)
	assertKind(t, err, KindValidation)

	_, err = uc.FileReport("u1", "", "singkat")
	assertKind(t, err, KindValidation)

	rep, err := uc.FileReport("u1", "2024-03-01", "<b>Menyusun</b> notulen rapat")
	require.NoError(t, err)
	assert.Equal(t, "bMenyusun/b notulen rapat", rep.Record.Report())
}

func TestHistoryAndRecentReports(t *testing.T) {
	f := newFixture("2024-03-04", "07:45")
	uc := NewAttendanceUsecase(f.repos.Attendance, f.clock)

	_, err := uc.ClockIn("u1", model.WorkTypeWFO)
	require.NoError(t, err)
	f.now.set("2024-03-04", "16:00")
	_, err = uc.ClockOut("u1", validReport)
	require.NoError(t, err)

	f.now.set("2024-03-05", "08:30")
	_, err = uc.ClockIn("u1", model.WorkTypeWFO)
	require.NoError(t, err)

	_, err = uc.FileReport("u1", "2024-03-01", validReport)
	require.NoError(t, err)

	hist, err := uc.History("u1", "2024-03")
	require.NoError(t, err)
	require.Len(t, hist.Records, 3)
	assert.Equal(t, "2024-03-05", hist.Records[0].Date)
	assert.Equal(t, workhours.StatusNotYetHome, hist.Records[0].HistoryStatus)
	assert.Equal(t, workhours.StatusOnTime, hist.Records[1].HistoryStatus)
	assert.Equal(t, workhours.StatusAbsent, hist.Records[2].HistoryStatus)
	assert.Equal(t, 1, hist.Summary[workhours.StatusOnTime])
	assert.Equal(t, 0, hist.Summary[workhours.StatusLate])

	_, err = uc.History("u1", "2024/03")
	assertKind(t, err, KindValidation)

	reports, err := uc.RecentReports("u1")
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestToday(t *testing.T) {
	f := newFixture("2024-03-09", "09:00")
	uc := NewAttendanceUsecase(f.repos.Attendance, f.clock)

	today, err := uc.Today("u1")
	require.NoError(t, err)
	assert.Nil(t, today.Record)
	assert.Equal(t, "2024-03-09", today.Date)
	assert.Equal(t, workhours.MsgWeekendDay, today.DayMessage)
}
