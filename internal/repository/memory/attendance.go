package memory

import (
	"sort"
	"strings"
	"time"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
)

type attendanceRepo struct{ s *Store }

func (r *attendanceRepo) GetByUserAndDate(userID, date string) (*model.AttendanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.attendance[attendanceKey{userID, date}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (r *attendanceRepo) Create(rec *model.AttendanceRecord) error {
	if err := rec.Check(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := attendanceKey{rec.UserID, rec.Date}
	if _, exists := r.s.attendance[key]; exists {
		return repository.ErrDuplicate
	}
	r.insert(rec)
	return nil
}

func (r *attendanceRepo) insert(rec *model.AttendanceRecord) {
	now := r.s.now()
	rec.ID = r.s.id()
	rec.CreatedAt, rec.UpdatedAt = now, now
	r.s.attendance[attendanceKey{rec.UserID, rec.Date}] = *rec
}

func (r *attendanceRepo) Update(rec *model.AttendanceRecord) error {
	if err := rec.Check(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := attendanceKey{rec.UserID, rec.Date}
	old, exists := r.s.attendance[key]
	if !exists || old.ID != rec.ID {
		return repository.ErrNotFound
	}
	rec.UpdatedAt = r.s.now()
	r.s.attendance[key] = *rec
	return nil
}

func (r *attendanceRepo) Upsert(rec *model.AttendanceRecord) error {
	if err := rec.Check(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := attendanceKey{rec.UserID, rec.Date}
	old, exists := r.s.attendance[key]
	if !exists {
		r.insert(rec)
		return nil
	}
	old.ClockInTime = rec.ClockInTime
	old.ClockOutTime = rec.ClockOutTime
	old.WorkType = rec.WorkType
	old.Status = rec.Status
	old.DailyReport = rec.DailyReport
	old.UpdatedAt = r.s.now()
	r.s.attendance[key] = old
	*rec = old
	return nil
}

func (r *attendanceRepo) UpsertReport(rec *model.AttendanceRecord) error {
	if err := rec.Check(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := attendanceKey{rec.UserID, rec.Date}
	old, exists := r.s.attendance[key]
	if !exists {
		r.insert(rec)
		return nil
	}
	old.DailyReport = rec.DailyReport
	old.UpdatedAt = r.s.now()
	r.s.attendance[key] = old
	*rec = old
	return nil
}

func (r *attendanceRepo) filter(keep func(model.AttendanceRecord) bool) []model.AttendanceRecord {
	var list []model.AttendanceRecord
	for _, rec := range r.s.attendance {
		if keep(rec) {
			list = append(list, rec)
		}
	}
	return list
}

func sortByDateDesc(list []model.AttendanceRecord) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date > list[j].Date
		}
		return list[i].UserID < list[j].UserID
	})
}

func (r *attendanceRepo) ListByUserBetween(userID, from, to string) ([]model.AttendanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.filter(func(rec model.AttendanceRecord) bool {
		return rec.UserID == userID && rec.Date >= from && rec.Date <= to
	})
	sortByDateDesc(list)
	return list, nil
}

func (r *attendanceRepo) ListBetween(from, to string) ([]model.AttendanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.filter(func(rec model.AttendanceRecord) bool {
		return rec.Date >= from && rec.Date <= to
	})
	sortByDateDesc(list)
	return list, nil
}

func (r *attendanceRepo) ListByDate(date string) ([]model.AttendanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.filter(func(rec model.AttendanceRecord) bool { return rec.Date == date })
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *attendanceRepo) RecentReports(userID string, limit int) ([]model.AttendanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.filter(func(rec model.AttendanceRecord) bool {
		return rec.UserID == userID && rec.DailyReport != nil && *rec.DailyReport != ""
	})
	sortByDateDesc(list)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *attendanceRepo) ListUserIDs() ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := map[string]bool{}
	for k := range r.s.attendance {
		seen[k.userID] = true
	}
	return sortedKeys(seen), nil
}

func (r *attendanceRepo) StatsByUser() ([]repository.UserAttendanceStat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byUser := map[string]*repository.UserAttendanceStat{}
	for k := range r.s.attendance {
		st, ok := byUser[k.userID]
		if !ok {
			st = &repository.UserAttendanceStat{UserID: k.userID}
			byUser[k.userID] = st
		}
		st.Total++
		if k.date > st.LastDate {
			st.LastDate = k.date
		}
	}
	stats := make([]repository.UserAttendanceStat, 0, len(byUser))
	for _, id := range sortedKeys(byUser) {
		stats = append(stats, *byUser[id])
	}
	return stats, nil
}

// DuplicatesOnDate selalu kosong karena map sudah menjamin satu baris per (user, tanggal).
func (r *attendanceRepo) DuplicatesOnDate(date string) ([]string, error) {
	return nil, nil
}

func (r *attendanceRepo) InvalidTimeRangesOnDate(date string) ([]model.AttendanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.filter(func(rec model.AttendanceRecord) bool {
		return rec.Date == date && rec.ClockInTime != nil && rec.ClockOutTime != nil &&
			!rec.ClockOutTime.After(*rec.ClockInTime)
	}), nil
}

func (r *attendanceRepo) OrphansOnDate(date string) ([]model.AttendanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.filter(func(rec model.AttendanceRecord) bool {
		_, hasProfile := r.s.profiles[rec.UserID]
		return rec.Date == date && !hasProfile
	}), nil
}

type tokenRepo struct{ s *Store }

func (r *tokenRepo) Create(token *model.RevokedToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.tokens[token.JTI]; exists {
		return nil
	}
	token.ID = r.s.id()
	token.CreatedAt = r.s.now()
	r.s.tokens[token.JTI] = *token
	return nil
}

func (r *tokenRepo) IsRevoked(jti string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, exists := r.s.tokens[jti]
	return exists, nil
}

func (r *tokenRepo) DeleteExpired(before time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for jti, t := range r.s.tokens {
		if t.ExpiresAt.Before(before) {
			delete(r.s.tokens, jti)
			n++
		}
	}
	return n, nil
}

type dashboardRepo struct{ s *Store }

func (r *dashboardRepo) GetDashboardStats(date, monthStart, monthEnd string) (repository.DashboardStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stats := repository.NewDashboardStats()
	for userID := range r.s.profiles {
		if role, ok := r.s.roles[userID]; ok && role.Role == model.RoleAdmin {
			continue
		}
		stats.TotalPegawai++
	}
	for _, rec := range r.s.attendance {
		if rec.Date == date {
			stats.HariIni[rec.Status]++
		}
		if rec.Date >= monthStart && rec.Date <= monthEnd {
			stats.BulanIni[rec.WorkType]++
		}
	}
	return stats, nil
}

type systemRepo struct{ s *Store }

func (r *systemRepo) Ping() error { return nil }

var knownTables = map[string]bool{
	"users": true, "profiles": true, "user_roles": true, "attendance_records": true, "revoked_tokens": true,
}

func (r *systemRepo) TableAccessible(table string) error {
	if !knownTables[strings.TrimSpace(table)] {
		return repository.ErrNotFound
	}
	return nil
}
