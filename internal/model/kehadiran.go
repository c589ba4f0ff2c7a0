package model

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

const DateLayout = "2006-01-02"

// AttendanceRecord adalah presensi satu user pada satu tanggal.
type AttendanceRecord struct {
	gorm.Model
	UserID       string     `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_attendance_user_date"`
	Date         string     `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_user_date;index"` // Format YYYY-MM-DD
	ClockInTime  *time.Time `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time"`
	WorkType     string     `json:"work_type" gorm:"size:10;not null;default:WFO"`
	Status       string     `json:"status" gorm:"size:20;not null;default:active"`
	DailyReport  *string    `json:"daily_report" gorm:"type:text"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// AfterFind menolak baris yang bentuknya tidak sesuai sebelum sampai ke logic aplikasi.
func (a *AttendanceRecord) AfterFind(tx *gorm.DB) error {
	return a.Check()
}

func (a AttendanceRecord) Check() error {
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return fmt.Errorf("%w: tanggal %q", ErrMalformedRow, a.Date)
	}
	if !IsWorkType(a.WorkType) {
		return fmt.Errorf("%w: work_type %q", ErrMalformedRow, a.WorkType)
	}
	if !IsAttendanceStatus(a.Status) {
		return fmt.Errorf("%w: status %q", ErrMalformedRow, a.Status)
	}
	return nil
}

func (a AttendanceRecord) HasClockIn() bool  { return a.ClockInTime != nil }
func (a AttendanceRecord) HasClockOut() bool { return a.ClockOutTime != nil }

// Report mengembalikan laporan kegiatan yang sudah di-trim ("" jika belum ada).
func (a AttendanceRecord) Report() string {
	if a.DailyReport == nil {
		return ""
	}
	return strings.TrimSpace(*a.DailyReport)
}
