package repository

import (
	"e-presensi-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	GetByUserID(userID string) (*model.UserRole, error)
	GetAll() ([]model.UserRole, error)
	ListUserIDs() ([]string, error)
	ListUserIDsByRole(role string) ([]string, error)
	CreateIfMissing(role *model.UserRole) (bool, error)
	Upsert(userID, role string) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db}
}

func (r *roleRepository) GetByUserID(userID string) (*model.UserRole, error) {
	var role model.UserRole
	if err := r.db.Where("user_id = ?", userID).First(&role).Error; err != nil {
		return nil, mapError(err)
	}
	return &role, nil
}

func (r *roleRepository) GetAll() ([]model.UserRole, error) {
	var roles []model.UserRole
	err := r.db.Find(&roles).Error
	return roles, mapError(err)
}

func (r *roleRepository) ListUserIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&model.UserRole{}).Pluck("user_id", &ids).Error
	return ids, mapError(err)
}

func (r *roleRepository) ListUserIDsByRole(role string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.UserRole{}).Where("role = ?", role).Pluck("user_id", &ids).Error
	return ids, mapError(err)
}

func (r *roleRepository) CreateIfMissing(role *model.UserRole) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(role)
	if res.Error != nil {
		return false, mapError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Upsert membuat role baru atau mengganti role yang sudah ada.
func (r *roleRepository) Upsert(userID, role string) error {
	row := model.UserRole{UserID: userID, Role: role}
	return mapError(r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(&row).Error)
}
