package model

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserRole menyimpan role satu user. Tidak ada baris berarti role "user".
type UserRole struct {
	gorm.Model
	UserID string `json:"user_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	Role   string `json:"role" gorm:"size:10;not null;default:user"`
}

func (r *UserRole) AfterFind(tx *gorm.DB) error {
	if r.Role != RoleAdmin && r.Role != RoleUser {
		return fmt.Errorf("%w: role %q untuk user %s", ErrMalformedRow, r.Role, r.UserID)
	}
	return nil
}

// RoleOf mengembalikan role dari baris (nil = default "user").
func RoleOf(r *UserRole) string {
	if r == nil || r.Role == "" {
		return RoleUser
	}
	return r.Role
}
