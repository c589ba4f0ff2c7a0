package repository

import (
	"time"

	"e-presensi-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RevokedTokenRepository interface {
	Create(token *model.RevokedToken) error
	IsRevoked(jti string) (bool, error)
	DeleteExpired(before time.Time) (int64, error)
}

type revokedTokenRepository struct {
	db *gorm.DB
}

func NewRevokedTokenRepository(db *gorm.DB) RevokedTokenRepository {
	return &revokedTokenRepository{db}
}

// Create idempoten: logout dua kali dengan token yang sama tidak error.
func (r *revokedTokenRepository) Create(token *model.RevokedToken) error {
	return mapError(r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "jti"}},
		DoNothing: true,
	}).Create(token).Error)
}

func (r *revokedTokenRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&model.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, mapError(err)
}

func (r *revokedTokenRepository) DeleteExpired(before time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", before).Delete(&model.RevokedToken{})
	return res.RowsAffected, mapError(res.Error)
}
