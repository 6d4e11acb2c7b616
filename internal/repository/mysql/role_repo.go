package mysql

import (
	"Folks_Community/internal/model"

	"gorm.io/gorm"
)

type RoleRepository struct {
	DB *gorm.DB
}

func (r *RoleRepository) Create(role *model.Role) error {
	return r.DB.Create(role).Error
}

func (r *RoleRepository) FindByID(id string) (*model.Role, error) {
	var role model.Role
	err := r.DB.First(&role, "id = ?", id).Error
	return &role, err
}

func (r *RoleRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Role{}).Count(&count).Error
	return count, err
}

func (r *RoleRepository) List(offset, limit int) ([]model.Role, error) {
	var list []model.Role
	err := r.DB.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}
