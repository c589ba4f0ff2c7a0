package repository

import (
	"e-presensi-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	GetByUserID(userID string) (*model.Profile, error)
	GetAll() ([]model.Profile, error)
	ListUserIDs() ([]string, error)
	Create(profile *model.Profile) error
	CreateIfMissing(profile *model.Profile) (bool, error)
	Update(profile *model.Profile) error
	CountIncomplete() (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db}
}

func (r *profileRepository) GetByUserID(userID string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, mapError(err)
	}
	return &profile, nil
}

// GetAll diurutkan berdasarkan nama lengkap.
func (r *profileRepository) GetAll() ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.Order("full_name asc").Find(&profiles).Error
	return profiles, mapError(err)
}

func (r *profileRepository) ListUserIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Profile{}).Pluck("user_id", &ids).Error
	return ids, mapError(err)
}

func (r *profileRepository) Create(profile *model.Profile) error {
	return mapError(r.db.Create(profile).Error)
}

// CreateIfMissing tidak melakukan apa-apa jika user sudah punya profil. Hasil true berarti baris baru dibuat.
func (r *profileRepository) CreateIfMissing(profile *model.Profile) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(profile)
	if res.Error != nil {
		return false, mapError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *profileRepository) Update(profile *model.Profile) error {
	return mapError(r.db.Save(profile).Error)
}

func (r *profileRepository) CountIncomplete() (int64, error) {
	var count int64
	err := r.db.Model(&model.Profile{}).
		Where("full_name IS NULL OR full_name = '' OR position IS NULL OR position = '' OR department IS NULL OR department = ''").
		Count(&count).Error
	return count, mapError(err)
}
