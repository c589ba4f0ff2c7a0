package repository

import "gorm.io/gorm"

type SystemRepository interface {
	Ping() error
	TableAccessible(table string) error
}

type systemRepository struct {
	db *gorm.DB
}

func NewSystemRepository(db *gorm.DB) SystemRepository {
	return &systemRepository{db}
}

func (r *systemRepository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (r *systemRepository) TableAccessible(table string) error {
	var rows []map[string]interface{}
	return r.db.Table(table).Limit(1).Find(&rows).Error
}
