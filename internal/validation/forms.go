package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AttendanceForm adalah isian form presensi manual admin. Jam dalam format "HH:mm".
type AttendanceForm struct {
	UserID   string
	WorkType string
	ClockIn  string
	ClockOut string
}

var placeholderUsers = map[string]bool{"loading": true, "no-users": true}

func ValidateAttendanceForm(f AttendanceForm) error {
	if f.UserID == "" || placeholderUsers[f.UserID] {
		return fail("user_id", "Harap pilih user terlebih dahulu")
	}
	if f.WorkType == "" {
		return fail("work_type", "Harap pilih tipe kerja")
	}
	if f.ClockIn == "" {
		return fail("clock_in", "Jam masuk wajib diisi")
	}
	if err := ClockTime("clock_in", f.ClockIn); err != nil {
		return err
	}
	if f.ClockOut != "" {
		if err := ClockTime("clock_out", f.ClockOut); err != nil {
			return err
		}
	}
	if err := ClockOrder(f.ClockIn, f.ClockOut); err != nil {
		return err
	}
	return nil
}

// ClockOrder menolak jam pulang yang tidak lebih besar dari jam masuk.
// Keduanya harus string jam dengan format yang sama di hari yang sama.
func ClockOrder(clockIn, clockOut string) error {
	if clockOut != "" && clockOut <= clockIn {
		return fail("clock_out", "Jam pulang harus setelah jam masuk")
	}
	return nil
}

// ClockTime memastikan format "HH:mm".
func ClockTime(field, value string) error {
	if _, err := time.Parse("15:04", value); err != nil || len(value) != 5 {
		return fail(field, "Format jam harus HH:mm")
	}
	return nil
}

func Date(value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fail("tanggal", "Format tanggal harus YYYY-MM-DD")
	}
	return nil
}

// ErrPeriodFormat untuk periode yang bukan "YYYY-MM".
var ErrPeriodFormat = fail("periode", "Format periode harus YYYY-MM")

// DateRange adalah rentang tanggal inklusif hasil ValidateDateRange. Month 0 berarti satu tahun penuh.
type DateRange struct {
	Year  int
	Month int
	Start string
	End   string
}

// ValidateDateRange memeriksa tahun (2020 s/d tahun depan) dan bulan (1-12 atau "all").
func ValidateDateRange(year, month string, now time.Time) (DateRange, error) {
	yearNum, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return DateRange{}, fail("tahun", "Tahun tidak valid")
	}

	maxYear := now.Year() + 1
	if yearNum < 2020 || yearNum > maxYear {
		return DateRange{}, fail("tahun", fmt.Sprintf("Tahun harus antara 2020 dan %d", maxYear))
	}

	month = strings.TrimSpace(month)
	if month == "" || month == "all" {
		return DateRange{
			Year:  yearNum,
			Start: fmt.Sprintf("%04d-01-01", yearNum),
			End:   fmt.Sprintf("%04d-12-31", yearNum),
		}, nil
	}

	monthNum, err := strconv.Atoi(month)
	if err != nil || monthNum < 1 || monthNum > 12 {
		return DateRange{}, fail("bulan", "Bulan tidak valid")
	}

	first := time.Date(yearNum, time.Month(monthNum), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return DateRange{
		Year:  yearNum,
		Month: monthNum,
		Start: first.Format("2006-01-02"),
		End:   last.Format("2006-01-02"),
	}, nil
}

var monthNames = []string{
	"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName mengembalikan nama bulan dalam Bahasa Indonesia.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return monthNames[month]
}
