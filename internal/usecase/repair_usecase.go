package usecase

import (
	"fmt"
	"log"
	"sort"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
)

// RepairUsecase melengkapi profil dan role untuk user yang datanya tidak lengkap.
type RepairUsecase struct {
	attendance repository.AttendanceRepository
	profiles   repository.ProfileRepository
	roles      repository.RoleRepository
}

func NewRepairUsecase(attendance repository.AttendanceRepository, profiles repository.ProfileRepository, roles repository.RoleRepository) *RepairUsecase {
	return &RepairUsecase{attendance: attendance, profiles: profiles, roles: roles}
}

type RepairResult struct {
	TotalUsers      int      `json:"total_users"`
	CreatedProfiles int      `json:"created_profiles"`
	CreatedRoles    int      `json:"created_roles"`
	Errors          []string `json:"errors"`
}

type AssignRolesResult struct {
	TotalProfiles int      `json:"total_profiles"`
	Assigned      int      `json:"assigned"`
	Errors        []string `json:"errors"`
}

// Repair mengumpulkan user id dari presensi, profil, dan role, lalu memastikan setiap user
// punya profil dan role. Kegagalan per user dicatat tanpa menghentikan proses.
// Insert memakai ON CONFLICT DO NOTHING sehingga aman dijalankan berulang atau bersamaan.
func (u *RepairUsecase) Repair() (*RepairResult, error) {
	result := &RepairResult{Errors: []string{}}

	// 1. Kumpulkan semua user id
	ids := map[string]bool{}
	sources := []struct {
		name string
		list func() ([]string, error)
	}{
		{"presensi", u.attendance.ListUserIDs},
		{"profil", u.profiles.ListUserIDs},
		{"role", u.roles.ListUserIDs},
	}
	for _, src := range sources {
		list, err := src.list()
		if err != nil {
			return nil, internal(fmt.Sprintf("Gagal mengambil user id dari %s", src.name), err)
		}
		for _, id := range list {
			if id != "" {
				ids[id] = true
			}
		}
	}

	userIDs := make([]string, 0, len(ids))
	for id := range ids {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)
	result.TotalUsers = len(userIDs)

	// 2. Lengkapi profil dan role per user
	for _, userID := range userIDs {
		profile := model.PlaceholderProfile(userID)
		created, err := u.profiles.CreateIfMissing(&profile)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Gagal membuat profil untuk %s: %v", userID, err))
		} else if created {
			result.CreatedProfiles++
		}

		role := model.UserRole{UserID: userID, Role: model.RoleUser}
		created, err = u.roles.CreateIfMissing(&role)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Gagal membuat role untuk %s: %v", userID, err))
		} else if created {
			result.CreatedRoles++
		}
	}

	log.Printf("[REPAIR] %d user diperiksa, %d profil dibuat, %d role dibuat, %d error",
		result.TotalUsers, result.CreatedProfiles, result.CreatedRoles, len(result.Errors))
	return result, nil
}

// AssignMissingRoles memberi role "user" ke setiap profil yang belum punya role.
func (u *RepairUsecase) AssignMissingRoles() (*AssignRolesResult, error) {
	profileIDs, err := u.profiles.ListUserIDs()
	if err != nil {
		return nil, internal("Gagal mengambil data profil", err)
	}
	roleIDs, err := u.roles.ListUserIDs()
	if err != nil {
		return nil, internal("Gagal mengambil data role", err)
	}

	hasRole := make(map[string]bool, len(roleIDs))
	for _, id := range roleIDs {
		hasRole[id] = true
	}

	result := &AssignRolesResult{TotalProfiles: len(profileIDs), Errors: []string{}}
	for _, userID := range profileIDs {
		if hasRole[userID] {
			continue
		}
		role := model.UserRole{UserID: userID, Role: model.RoleUser}
		created, err := u.roles.CreateIfMissing(&role)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Gagal memberi role untuk %s: %v", userID, err))
			continue
		}
		if created {
			result.Assigned++
		}
	}

	log.Printf("[ROLES] %d dari %d profil diberi role user", result.Assigned, result.TotalProfiles)
	return result, nil
}
