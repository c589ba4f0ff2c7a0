package usecase

import (
	"errors"
	"strings"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/validation"
)

type UserAdminUsecase struct {
	profiles   repository.ProfileRepository
	roles      repository.RoleRepository
	attendance repository.AttendanceRepository
}

func NewUserAdminUsecase(profiles repository.ProfileRepository, roles repository.RoleRepository, attendance repository.AttendanceRepository) *UserAdminUsecase {
	return &UserAdminUsecase{profiles: profiles, roles: roles, attendance: attendance}
}

type UserSummary struct {
	model.Profile
	Role            string `json:"role"`
	TotalAttendance int64  `json:"total_attendance"`
	LastAttendance  string `json:"last_attendance"`
}

type UpdateUserInput struct {
	FullName   string `json:"full_name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
}

func (u *UserAdminUsecase) ListUsers() ([]UserSummary, error) {
	profiles, err := u.profiles.GetAll()
	if err != nil {
		return nil, internal("Gagal mengambil data user", err)
	}
	roles, err := u.roles.GetAll()
	if err != nil {
		return nil, internal("Gagal mengambil data role", err)
	}
	stats, err := u.attendance.StatsByUser()
	if err != nil {
		return nil, internal("Gagal mengambil statistik presensi", err)
	}

	roleByUser := make(map[string]string, len(roles))
	for _, r := range roles {
		roleByUser[r.UserID] = r.Role
	}
	statByUser := make(map[string]repository.UserAttendanceStat, len(stats))
	for _, s := range stats {
		statByUser[s.UserID] = s
	}

	list := make([]UserSummary, 0, len(profiles))
	for _, p := range profiles {
		role := roleByUser[p.UserID]
		if role == "" {
			role = model.RoleUser
		}
		st := statByUser[p.UserID]
		list = append(list, UserSummary{
			Profile:         p,
			Role:            role,
			TotalAttendance: st.Total,
			LastAttendance:  st.LastDate,
		})
	}
	return list, nil
}

func (u *UserAdminUsecase) UpdateUser(userID string, in UpdateUserInput) (*UserSummary, error) {
	input := validation.ProfileInput{
		FullName:   strings.TrimSpace(in.FullName),
		Position:   strings.TrimSpace(in.Position),
		Department: in.Department,
		EmployeeID: strings.TrimSpace(in.EmployeeID),
	}
	if err := validation.Profile(input); err != nil {
		return nil, invalid(err)
	}
	if in.Role != "" {
		if err := validation.Role(in.Role); err != nil {
			return nil, invalid(err)
		}
	}

	profile, err := u.profiles.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User tidak ditemukan")
		}
		return nil, internal("Gagal mengambil data user", err)
	}

	profile.FullName = input.FullName
	profile.Position = input.Position
	profile.Department = input.Department
	profile.EmployeeID = input.EmployeeID
	if err := u.profiles.Update(profile); err != nil {
		return nil, internal("Gagal memperbarui profil", err)
	}

	summary := &UserSummary{Profile: *profile, Role: in.Role}
	if in.Role != "" {
		if err := u.roles.Upsert(userID, in.Role); err != nil {
			return nil, internal("Gagal memperbarui role", err)
		}
	} else {
		role, err := u.roles.GetByUserID(userID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, internal("Gagal mengambil role", err)
		}
		summary.Role = model.RoleOf(role)
	}
	return summary, nil
}

// SetRole mengganti role satu user. Profil harus sudah ada.
func (u *UserAdminUsecase) SetRole(userID, role string) error {
	if err := validation.Role(role); err != nil {
		return invalid(err)
	}
	if _, err := u.profiles.GetByUserID(userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("User tidak ditemukan")
		}
		return internal("Gagal mengambil data user", err)
	}
	if err := u.roles.Upsert(userID, role); err != nil {
		return internal("Gagal memperbarui role", err)
	}
	return nil
}
