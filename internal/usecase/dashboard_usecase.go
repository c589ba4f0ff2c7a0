package usecase

import (
	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/workhours"
)

const (
	ViewAdmin = "admin"
	ViewStaff = "staff"
)

type DashboardUsecase struct {
	repos      repository.Repositories
	attendance *AttendanceUsecase
	clock      Clock
}

func NewDashboardUsecase(repos repository.Repositories, attendance *AttendanceUsecase, clock Clock) *DashboardUsecase {
	return &DashboardUsecase{repos: repos, attendance: attendance, clock: clock}
}

type Dashboard struct {
	View       string                     `json:"view"`
	Date       string                     `json:"date"`
	DayMessage string                     `json:"day_message"`
	Stats      *repository.DashboardStats `json:"stats,omitempty"`
	Today      *model.AttendanceRecord    `json:"today,omitempty"`
	Reports    []model.AttendanceRecord   `json:"reports,omitempty"`
	Summary    map[string]int             `json:"summary,omitempty"`
}

// Get memilih tampilan dashboard berdasarkan role user.
func (u *DashboardUsecase) Get(userID, role string) (*Dashboard, error) {
	now := u.clock.Now()
	d := &Dashboard{Date: u.clock.Today(), DayMessage: workhours.DayMessage(now)}

	if role == model.RoleAdmin {
		d.View = ViewAdmin
		first := now.AddDate(0, 0, -now.Day()+1)
		last := first.AddDate(0, 1, -1)
		stats, err := u.repos.Dashboard.GetDashboardStats(d.Date, first.Format(model.DateLayout), last.Format(model.DateLayout))
		if err != nil {
			return nil, internal("Gagal mengambil data dashboard", err)
		}
		d.Stats = &stats
		return d, nil
	}

	d.View = ViewStaff
	today, err := u.attendance.Today(userID)
	if err != nil {
		return nil, err
	}
	d.Today = today.Record

	reports, err := u.attendance.RecentReports(userID)
	if err != nil {
		return nil, err
	}
	d.Reports = reports

	history, err := u.attendance.History(userID, "")
	if err != nil {
		return nil, err
	}
	d.Summary = history.Summary
	return d, nil
}
