package repository

import (
	"e-presensi-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserAttendanceStat struct {
	UserID   string `json:"user_id"`
	Total    int64  `json:"total"`
	LastDate string `json:"last_date"`
}

type AttendanceRepository interface {
	GetByUserAndDate(userID, date string) (*model.AttendanceRecord, error)
	Create(rec *model.AttendanceRecord) error
	Update(rec *model.AttendanceRecord) error
	Upsert(rec *model.AttendanceRecord) error
	UpsertReport(rec *model.AttendanceRecord) error
	ListByUserBetween(userID, from, to string) ([]model.AttendanceRecord, error)
	ListBetween(from, to string) ([]model.AttendanceRecord, error)
	ListByDate(date string) ([]model.AttendanceRecord, error)
	RecentReports(userID string, limit int) ([]model.AttendanceRecord, error)
	ListUserIDs() ([]string, error)
	StatsByUser() ([]UserAttendanceStat, error)
	DuplicatesOnDate(date string) ([]string, error)
	InvalidTimeRangesOnDate(date string) ([]model.AttendanceRecord, error)
	OrphansOnDate(date string) ([]model.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

var userDateConflict = []clause.Column{{Name: "user_id"}, {Name: "date"}}

func (r *attendanceRepository) GetByUserAndDate(userID, date string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&rec).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &rec, nil
}

// Create gagal dengan ErrDuplicate jika (user_id, date) sudah ada.
func (r *attendanceRepository) Create(rec *model.AttendanceRecord) error {
	return mapError(r.db.Create(rec).Error)
}

func (r *attendanceRepository) Update(rec *model.AttendanceRecord) error {
	return mapError(r.db.Save(rec).Error)
}

// Upsert menimpa seluruh field presensi jika (user_id, date) sudah ada.
func (r *attendanceRepository) Upsert(rec *model.AttendanceRecord) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: userDateConflict,
		DoUpdates: clause.AssignmentColumns([]string{
			"clock_in_time", "clock_out_time", "work_type", "status", "daily_report", "updated_at",
		}),
	}).Create(rec).Error
	if err != nil {
		return mapError(err)
	}
	return r.reload(rec)
}

// UpsertReport hanya menyentuh daily_report pada baris yang sudah ada.
// Baris baru disimpan dengan field lain dari rec (status report_only).
func (r *attendanceRepository) UpsertReport(rec *model.AttendanceRecord) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   userDateConflict,
		DoUpdates: clause.AssignmentColumns([]string{"daily_report", "updated_at"}),
	}).Create(rec).Error
	if err != nil {
		return mapError(err)
	}
	return r.reload(rec)
}

// reload membaca ulang baris setelah upsert (ID dan field lain bisa berasal dari baris lama).
func (r *attendanceRepository) reload(rec *model.AttendanceRecord) error {
	var fresh model.AttendanceRecord
	if err := r.db.Where("user_id = ? AND date = ?", rec.UserID, rec.Date).First(&fresh).Error; err != nil {
		return mapError(err)
	}
	*rec = fresh
	return nil
}

func (r *attendanceRepository) ListByUserBetween(userID, from, to string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date desc").Find(&list).Error
	return list, mapError(err)
}

func (r *attendanceRepository) ListBetween(from, to string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Where("date >= ? AND date <= ?", from, to).
		Order("date desc").Order("user_id").Find(&list).Error
	return list, mapError(err)
}

func (r *attendanceRepository) ListByDate(date string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Where("date = ?", date).Order("created_at desc").Find(&list).Error
	return list, mapError(err)
}

func (r *attendanceRepository) RecentReports(userID string, limit int) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Where("user_id = ? AND daily_report IS NOT NULL AND daily_report <> ''", userID).
		Order("date desc").Limit(limit).Find(&list).Error
	return list, mapError(err)
}

func (r *attendanceRepository) ListUserIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&model.AttendanceRecord{}).Distinct().Pluck("user_id", &ids).Error
	return ids, mapError(err)
}

func (r *attendanceRepository) StatsByUser() ([]UserAttendanceStat, error) {
	var stats []UserAttendanceStat
	err := r.db.Model(&model.AttendanceRecord{}).
		Select("user_id, COUNT(*) AS total, MAX(date) AS last_date").
		Group("user_id").Scan(&stats).Error
	return stats, mapError(err)
}

// DuplicatesOnDate mengembalikan user yang punya lebih dari satu baris di tanggal itu.
// Dengan unique index seharusnya selalu kosong; tetap dicek untuk database lama tanpa index.
func (r *attendanceRepository) DuplicatesOnDate(date string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.AttendanceRecord{}).
		Where("date = ?", date).
		Group("user_id").Having("COUNT(*) > 1").
		Pluck("user_id", &ids).Error
	return ids, mapError(err)
}

func (r *attendanceRepository) InvalidTimeRangesOnDate(date string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Where("date = ? AND clock_in_time IS NOT NULL AND clock_out_time IS NOT NULL AND clock_out_time <= clock_in_time", date).
		Find(&list).Error
	return list, mapError(err)
}

func (r *attendanceRepository) OrphansOnDate(date string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Joins("LEFT JOIN profiles ON profiles.user_id = attendance_records.user_id AND profiles.deleted_at IS NULL").
		Where("attendance_records.date = ? AND profiles.id IS NULL", date).
		Find(&list).Error
	return list, mapError(err)
}
