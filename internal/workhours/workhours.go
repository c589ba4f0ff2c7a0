// Package workhours mengklasifikasikan waktu presensi terhadap jam kerja kantor:
// Senin-Kamis 08:00-16:00, Jumat 08:00-16:30, Sabtu-Minggu libur.
package workhours

import (
	"time"

	"e-presensi-backend/internal/model"
)

const (
	startMinute          = 8 * 60
	endMinuteMonThu      = 16 * 60
	endMinuteFriday      = 16*60 + 30
	lateThresholdMinutes = startMinute
)

const (
	MsgWeekendDay    = "Hari ini adalah hari libur (Sabtu/Minggu)"
	MsgMonThuHours   = "Jam kerja hari ini: 08:00 - 16:00 WIB"
	MsgFridayHours   = "Jam kerja hari ini: 08:00 - 16:30 WIB"
	MsgWeekend       = "⚠️ Hari ini adalah hari libur. Apakah Anda yakin ingin melakukan absensi?"
	MsgLate          = "⚠️ Anda terlambat dari jam kerja normal. Pastikan untuk datang tepat waktu di hari berikutnya."
	MsgClockInOut    = "ℹ️ Anda melakukan absensi di luar jam kerja normal."
	MsgClockInOK     = "✅ Absensi masuk berhasil dicatat."
	MsgClockOutOut   = "ℹ️ Anda melakukan absensi pulang di luar jam kerja normal."
	MsgClockOutOK    = "✅ Absensi pulang berhasil dicatat."
	StatusAbsent     = "Tidak Hadir"
	StatusNotYetHome = "Belum Pulang"
	StatusLate       = "Terlambat"
	StatusOnTime     = "Tepat Waktu"
)

type Result struct {
	IsWorkingHours bool   `json:"is_working_hours"`
	IsLate         bool   `json:"is_late"`
	Message        string `json:"message"`
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func IsWeekend(t time.Time) bool {
	d := t.Weekday()
	return d == time.Saturday || d == time.Sunday
}

// IsWorkingHours memakai batas inklusif di kedua ujung.
func IsWorkingHours(t time.Time) bool {
	if IsWeekend(t) {
		return false
	}
	m := minuteOfDay(t)
	end := endMinuteMonThu
	if t.Weekday() == time.Friday {
		end = endMinuteFriday
	}
	return m >= startMinute && m <= end
}

// IsLateArrival: hari kerja dan lewat dari 08:00, tidak bergantung pada batas pulang.
func IsLateArrival(t time.Time) bool {
	if IsWeekend(t) {
		return false
	}
	return minuteOfDay(t) > lateThresholdMinutes
}

func DayMessage(t time.Time) string {
	switch {
	case IsWeekend(t):
		return MsgWeekendDay
	case t.Weekday() == time.Friday:
		return MsgFridayHours
	default:
		return MsgMonThuHours
	}
}

func AttendanceMessage(t time.Time, isClockIn bool) string {
	if IsWeekend(t) {
		return MsgWeekend
	}

	if isClockIn {
		if IsLateArrival(t) {
			return MsgLate
		}
		if !IsWorkingHours(t) {
			return MsgClockInOut
		}
		return MsgClockInOK
	}

	if !IsWorkingHours(t) {
		return MsgClockOutOut
	}
	return MsgClockOutOK
}

func Classify(t time.Time, isClockIn bool) Result {
	return Result{
		IsWorkingHours: IsWorkingHours(t),
		IsLate:         IsLateArrival(t),
		Message:        AttendanceMessage(t, isClockIn),
	}
}

// HistoryStatus adalah label di halaman riwayat presensi.
func HistoryStatus(rec model.AttendanceRecord, loc *time.Location) string {
	if rec.ClockInTime == nil {
		return StatusAbsent
	}
	if rec.ClockOutTime == nil {
		return StatusNotYetHome
	}
	in := rec.ClockInTime.In(loc)
	workStart := time.Date(in.Year(), in.Month(), in.Day(), 8, 0, 0, 0, loc)
	if in.After(workStart) {
		return StatusLate
	}
	return StatusOnTime
}
