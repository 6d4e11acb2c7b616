package service

import (
	"Folks_Community/internal/model"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type RoleService struct {
	repo *mysql.RoleRepository
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{
		repo: &mysql.RoleRepository{DB: db},
	}
}

func (s *RoleService) CreateRole(name string) (*model.Role, error) {
	role := &model.Role{
		ID:   pkg.NewID(),
		Name: name,
		Kind: model.KindForRoleName(name),
	}
	if err := s.repo.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) ListRoles(page int) ([]model.Role, PageMeta, error) {
	page = NormalizePage(page)

	total, err := s.repo.Count()
	if err != nil {
		return nil, PageMeta{}, err
	}
	list, err := s.repo.List(PageOffset(page), PageLimit)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return list, NewPageMeta(total, page), nil
}
