package model

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Profile menyimpan data kepegawaian, satu baris per user.
type Profile struct {
	gorm.Model
	UserID     string `json:"user_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	FullName   string `json:"full_name" gorm:"size:100"`
	Position   string `json:"position" gorm:"size:50"`
	Department string `json:"department" gorm:"size:30"`
	EmployeeID string `json:"employee_id" gorm:"size:20"`
}

// IsIncomplete true jika nama, jabatan, atau unit kerja masih kosong.
func (p Profile) IsIncomplete() bool {
	return strings.TrimSpace(p.FullName) == "" ||
		strings.TrimSpace(p.Position) == "" ||
		strings.TrimSpace(p.Department) == ""
}

// ShortID mengambil 6 karakter terakhir user id, dipakai untuk nama placeholder.
func ShortID(userID string) string {
	if len(userID) <= 6 {
		return userID
	}
	return userID[len(userID)-6:]
}

// PlaceholderProfile dipakai saat profil belum ada (login pertama / perbaikan data).
func PlaceholderProfile(userID string) Profile {
	suffix := ShortID(userID)
	return Profile{
		UserID:     userID,
		FullName:   fmt.Sprintf("User-%s", suffix),
		Position:   "Staff",
		Department: DepartmentUmum,
		EmployeeID: fmt.Sprintf("EMP-%s", strings.ToUpper(suffix)),
	}
}
