package repository

import (
	"e-presensi-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalPegawai int64            `json:"total_pegawai"`
	HariIni      map[string]int64 `json:"hari_ini"`  // per status presensi
	BulanIni     map[string]int64 `json:"bulan_ini"` // per tipe kerja
}

func NewDashboardStats() DashboardStats {
	s := DashboardStats{
		HariIni:  map[string]int64{},
		BulanIni: map[string]int64{},
	}
	for _, st := range model.AttendanceStatuses {
		s.HariIni[st] = 0
	}
	for _, wt := range model.WorkTypes {
		s.BulanIni[wt] = 0
	}
	return s
}

type DashboardRepository interface {
	GetDashboardStats(date, monthStart, monthEnd string) (DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(date, monthStart, monthEnd string) (DashboardStats, error) {
	stats := NewDashboardStats()

	// 1. Total Pegawai (profil yang bukan admin)
	adminIDs := r.db.Model(&model.UserRole{}).Select("user_id").Where("role = ?", model.RoleAdmin)
	if err := r.db.Model(&model.Profile{}).Where("user_id NOT IN (?)", adminIDs).Count(&stats.TotalPegawai).Error; err != nil {
		return stats, mapError(err)
	}

	// 2. Statistik Harian (Hari Ini)
	var daily []struct {
		Status string
		Count  int64
	}
	if err := r.db.Model(&model.AttendanceRecord{}).
		Where("date = ?", date).
		Group("status").Select("status, count(*) as count").Scan(&daily).Error; err != nil {
		return stats, mapError(err)
	}
	for _, d := range daily {
		stats.HariIni[d.Status] = d.Count
	}

	// 3. Statistik Bulanan (Bulan Ini)
	var monthly []struct {
		WorkType string
		Count    int64
	}
	if err := r.db.Model(&model.AttendanceRecord{}).
		Where("date >= ? AND date <= ?", monthStart, monthEnd).
		Group("work_type").Select("work_type, count(*) as count").Scan(&monthly).Error; err != nil {
		return stats, mapError(err)
	}
	for _, m := range monthly {
		stats.BulanIni[m.WorkType] = m.Count
	}

	return stats, nil
}
