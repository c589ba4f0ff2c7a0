package model

import "time"

// User adalah akun login. ID berupa UUID string agar sama dengan user_id di tabel lain.
type User struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email     string    `json:"email" gorm:"size:191;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RevokedToken mencatat JWT yang sudah di-logout sampai masa berlakunya habis.
type RevokedToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	JTI       string    `json:"jti" gorm:"column:jti;size:64;uniqueIndex;not null"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
