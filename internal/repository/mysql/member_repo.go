package mysql

import (
	"Folks_Community/internal/model"

	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

func (r *MemberRepository) Create(member *model.Member) error {
	return r.DB.Create(member).Error
}

func (r *MemberRepository) FindByID(id string) (*model.Member, error) {
	var member model.Member
	err := r.DB.First(&member, "id = ?", id).Error
	return &member, err
}

// ListByCommunity loads the full roster with user and role refs; paging
// over it happens in memory at the service layer.
func (r *MemberRepository) ListByCommunity(communityID string) ([]model.Member, error) {
	var list []model.Member
	err := r.DB.Preload("UserRef").Preload("RoleRef").
		Where("community = ?", communityID).
		Find(&list).Error
	return list, err
}

func (r *MemberRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Member{}).Where("user = ?", userID).Count(&count).Error
	return count, err
}

func (r *MemberRepository) ListByUser(userID string, offset, limit int) ([]model.Member, error) {
	var list []model.Member
	err := r.DB.Preload("CommunityRef").Preload("CommunityRef.OwnerRef").
		Where("user = ?", userID).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *MemberRepository) ExistsInCommunity(communityID, userID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Member{}).
		Where("community = ? AND user = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *MemberRepository) Delete(id string) error {
	return r.DB.Delete(&model.Member{}, "id = ?", id).Error
}
