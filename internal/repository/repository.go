package repository

import "gorm.io/gorm"

// Repositories mengumpulkan semua repository agar bisa diteruskan sebagai satu nilai ke routes dan CLI.
type Repositories struct {
	Users      UserRepository
	Profiles   ProfileRepository
	Roles      RoleRepository
	Attendance AttendanceRepository
	Tokens     RevokedTokenRepository
	Dashboard  DashboardRepository
	System     SystemRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:      NewUserRepository(db),
		Profiles:   NewProfileRepository(db),
		Roles:      NewRoleRepository(db),
		Attendance: NewAttendanceRepository(db),
		Tokens:     NewRevokedTokenRepository(db),
		Dashboard:  NewDashboardRepository(db),
		System:     NewSystemRepository(db),
	}
}
