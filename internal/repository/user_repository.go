package repository

import (
	"e-presensi-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	CreateWithProfile(user *model.User, profile *model.Profile, role *model.UserRole) error
	UpdatePassword(id, hash string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// CreateWithProfile menyimpan akun, profil, dan role dalam satu transaksi.
// Jika salah satu gagal, tidak ada baris yang tersimpan.
func (r *userRepository) CreateWithProfile(user *model.User, profile *model.Profile, role *model.UserRole) error {
	return mapError(r.db.Transaction(func(tx *gorm.DB) error {
		// 1. Akun
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		// 2. Profil
		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		// 3. Role
		role.UserID = user.ID
		return tx.Create(role).Error
	}))
}

func (r *userRepository) UpdatePassword(id, hash string) error {
	res := r.db.Model(&model.User{}).Where("id = ?", id).Update("password", hash)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
