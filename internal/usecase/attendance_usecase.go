package usecase

import (
	"errors"
	"log"
	"strings"
	"time"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/validation"
	"e-presensi-backend/internal/workhours"
)

const recentReportLimit = 10

type AttendanceUsecase struct {
	repo  repository.AttendanceRepository
	clock Clock
}

func NewAttendanceUsecase(repo repository.AttendanceRepository, clock Clock) *AttendanceUsecase {
	return &AttendanceUsecase{repo: repo, clock: clock}
}

type AttendanceResult struct {
	Record         *model.AttendanceRecord `json:"record"`
	Classification workhours.Result        `json:"classification"`
}

type TodayResult struct {
	Date       string                  `json:"date"`
	Record     *model.AttendanceRecord `json:"record"`
	DayMessage string                  `json:"day_message"`
}

type HistoryEntry struct {
	model.AttendanceRecord
	HistoryStatus string `json:"history_status"`
}

type HistoryResult struct {
	Month   string         `json:"month"`
	Records []HistoryEntry `json:"records"`
	Summary map[string]int `json:"summary"`
}

type ReportResult struct {
	Record  *model.AttendanceRecord `json:"record"`
	Created bool                    `json:"created"`
}

// findOne mengubah ErrNotFound menjadi nil tanpa error.
func (u *AttendanceUsecase) findOne(userID, date string) (*model.AttendanceRecord, error) {
	rec, err := u.repo.GetByUserAndDate(userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, internal("Gagal mengambil data presensi", err)
	}
	return rec, nil
}

func (u *AttendanceUsecase) Today(userID string) (*TodayResult, error) {
	now := u.clock.Now()
	rec, err := u.findOne(userID, u.clock.Today())
	if err != nil {
		return nil, err
	}
	return &TodayResult{Date: u.clock.Today(), Record: rec, DayMessage: workhours.DayMessage(now)}, nil
}

func (u *AttendanceUsecase) ClockIn(userID, workType string) (*AttendanceResult, error) {
	// 1. Validasi tipe kerja
	if err := validation.WorkType(workType); err != nil {
		return nil, invalid(err)
	}

	now := u.clock.Now()
	date := now.Format(model.DateLayout)

	// 2. Cek presensi hari ini
	existing, err := u.findOne(userID, date)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.HasClockIn() {
			return nil, conflict("Anda sudah melakukan absen masuk hari ini")
		}
		// Baris report_only: isi jam masuk, laporan tetap disimpan
		existing.ClockInTime = &now
		existing.WorkType = workType
		existing.Status = model.StatusActive
		if err := u.repo.Update(existing); err != nil {
			return nil, internal("Gagal menyimpan absensi", err)
		}
		return &AttendanceResult{Record: existing, Classification: workhours.Classify(now, true)}, nil
	}

	// 3. Simpan presensi baru
	rec := &model.AttendanceRecord{
		UserID:      userID,
		Date:        date,
		ClockInTime: &now,
		WorkType:    workType,
		Status:      model.StatusActive,
	}
	if err := u.repo.Create(rec); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Anda sudah melakukan absen masuk hari ini")
		}
		return nil, internal("Gagal menyimpan absensi", err)
	}

	return &AttendanceResult{Record: rec, Classification: workhours.Classify(now, true)}, nil
}

// ClockOut memakai laporan baru jika diisi, atau laporan yang sudah tersimpan hari ini.
func (u *AttendanceUsecase) ClockOut(userID, report string) (*AttendanceResult, error) {
	now := u.clock.Now()

	// 1. Harus sudah absen masuk hari ini
	rec, err := u.findOne(userID, now.Format(model.DateLayout))
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.HasClockIn() {
		return nil, badRequest("Anda belum melakukan absen masuk hari ini")
	}
	if rec.HasClockOut() {
		return nil, conflict("Anda sudah melakukan absen pulang hari ini")
	}

	// 2. Laporan kegiatan wajib ada
	report = strings.TrimSpace(report)
	if report != "" {
		if err := validation.DailyReport(report); err != nil {
			return nil, invalid(err)
		}
		report = validation.SanitizeString(report)
	} else {
		report = rec.Report()
	}
	if report == "" {
		return nil, badRequest("Laporan kegiatan wajib diisi sebelum absen pulang")
	}

	// 3. Jam pulang harus setelah jam masuk
	clockIn := rec.ClockInTime.In(u.clock.Location()).Format("15:04:05")
	if err := validation.ClockOrder(clockIn, now.Format("15:04:05")); err != nil {
		return nil, invalid(err)
	}

	rec.ClockOutTime = &now
	rec.DailyReport = &report
	rec.Status = model.StatusCompleted
	if err := u.repo.Update(rec); err != nil {
		return nil, internal("Gagal menyimpan absen pulang", err)
	}

	return &AttendanceResult{Record: rec, Classification: workhours.Classify(now, false)}, nil
}

// FileReport menyimpan laporan kegiatan tanpa harus absen masuk.
// Baris yang sudah ada hanya diubah laporannya; jika belum ada dibuat dengan status report_only.
func (u *AttendanceUsecase) FileReport(userID, date, report string) (*ReportResult, error) {
	if date == "" {
		date = u.clock.Today()
	}
	if err := validation.Date(date); err != nil {
		return nil, invalid(err)
	}
	if date > u.clock.Today() {
		return nil, badRequest("Tanggal laporan tidak boleh melebihi hari ini")
	}
	if err := validation.DailyReport(report); err != nil {
		return nil, invalid(err)
	}
	clean := validation.SanitizeString(report)

	existing, err := u.findOne(userID, date)
	if err != nil {
		return nil, err
	}

	rec := &model.AttendanceRecord{
		UserID:      userID,
		Date:        date,
		WorkType:    model.WorkTypeWFO,
		Status:      model.StatusReportOnly,
		DailyReport: &clean,
	}
	if err := u.repo.UpsertReport(rec); err != nil {
		return nil, internal("Gagal menyimpan laporan", err)
	}

	return &ReportResult{Record: rec, Created: existing == nil}, nil
}

// History mengembalikan presensi satu bulan ("YYYY-MM"), terbaru di atas.
func (u *AttendanceUsecase) History(userID, month string) (*HistoryResult, error) {
	if month == "" {
		month = u.clock.Now().Format("2006-01")
	}
	first, err := time.ParseInLocation("2006-01", month, u.clock.Location())
	if err != nil {
		return nil, badRequest("Format bulan harus YYYY-MM")
	}
	last := first.AddDate(0, 1, -1)

	records, err := u.repo.ListByUserBetween(userID, first.Format(model.DateLayout), last.Format(model.DateLayout))
	if err != nil {
		return nil, internal("Gagal mengambil riwayat presensi", err)
	}

	result := &HistoryResult{
		Month:   month,
		Records: make([]HistoryEntry, 0, len(records)),
		Summary: map[string]int{
			workhours.StatusOnTime:     0,
			workhours.StatusLate:       0,
			workhours.StatusAbsent:     0,
			workhours.StatusNotYetHome: 0,
		},
	}
	for _, rec := range records {
		status := workhours.HistoryStatus(rec, u.clock.Location())
		result.Summary[status]++
		result.Records = append(result.Records, HistoryEntry{AttendanceRecord: rec, HistoryStatus: status})
	}
	return result, nil
}

func (u *AttendanceUsecase) RecentReports(userID string) ([]model.AttendanceRecord, error) {
	list, err := u.repo.RecentReports(userID, recentReportLimit)
	if err != nil {
		log.Printf("[ATTENDANCE] gagal mengambil laporan user %s: %v", userID, err)
		return nil, internal("Gagal mengambil laporan kegiatan", err)
	}
	return list, nil
}
