package mysql

import (
	"Folks_Community/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// CreateWithAdmin persists the community together with its seeded admin
// role and the creator's membership in one transaction, so a failed step
// never leaves a community without an admin member.
func (r *CommunityRepository) CreateWithAdmin(c *model.Community, admin *model.Role, m *model.Member) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *CommunityRepository) FindByID(id string) (*model.Community, error) {
	var community model.Community
	err := r.DB.First(&community, "id = ?", id).Error
	return &community, err
}

func (r *CommunityRepository) FindBySlug(slug string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("slug = ?", slug).First(&community).Error
	return &community, err
}

func (r *CommunityRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Community{}).Count(&count).Error
	return count, err
}

func (r *CommunityRepository) List(offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Preload("OwnerRef").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *CommunityRepository) CountByOwner(owner string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Community{}).Where("owner = ?", owner).Count(&count).Error
	return count, err
}

func (r *CommunityRepository) ListByOwner(owner string, offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Where("owner = ?", owner).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}
