package service

import (
	"errors"
	"time"

	"Folks_Community/internal/model"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommunityService struct {
	repo       *mysql.CommunityRepository
	memberRepo *mysql.MemberRepository
	events     *pkg.EventProducer
}

func NewCommunityService(db *gorm.DB, events *pkg.EventProducer) *CommunityService {
	return &CommunityService{
		repo:       &mysql.CommunityRepository{DB: db},
		memberRepo: &mysql.MemberRepository{DB: db},
		events:     events,
	}
}

type OwnerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoleSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommunityView is a community row with its owner embedded as {id, name}.
type CommunityView struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	Owner     OwnerSummary `json:"owner"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type CommunityMemberView struct {
	ID        string       `json:"id"`
	Community string       `json:"community"`
	User      OwnerSummary `json:"user"`
	Role      RoleSummary  `json:"role"`
	CreatedAt time.Time    `json:"created_at"`
}

// JoinedCommunityView lists a community the caller belongs to; created_at
// is the membership date, not the community's.
type JoinedCommunityView struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	Owner     OwnerSummary `json:"owner"`
	CreatedAt time.Time    `json:"created_at"`
}

// CreateCommunity derives the slug, checks uniqueness, and seeds the
// creator as first member holding a fresh "Community Admin" role. The
// three rows go in as one transaction.
func (s *CommunityService) CreateCommunity(actorID, name string) (*model.Community, error) {
	slug := pkg.Slugify(name)

	_, err := s.repo.FindBySlug(slug)
	if err == nil {
		return nil, pkg.Exists("name", "Community with this name already exists.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	community := &model.Community{
		ID:    pkg.NewID(),
		Name:  name,
		Slug:  slug,
		Owner: actorID,
	}
	admin := &model.Role{
		ID:   pkg.NewID(),
		Name: model.RoleNameAdmin,
		Kind: model.RoleKindAdmin,
	}
	member := &model.Member{
		ID:        pkg.NewID(),
		Community: community.ID,
		User:      actorID,
		Role:      admin.ID,
	}
	if err := s.repo.CreateWithAdmin(community, admin, member); err != nil {
		return nil, err
	}

	emitEvent(s.events, lifecycleEvent{
		Type:      EventCommunityCreated,
		Community: community.ID,
		User:      actorID,
		At:        time.Now(),
	})
	return community, nil
}

func (s *CommunityService) ListCommunities(page int) ([]CommunityView, PageMeta, error) {
	page = NormalizePage(page)

	total, err := s.repo.Count()
	if err != nil {
		return nil, PageMeta{}, err
	}
	list, err := s.repo.List(PageOffset(page), PageLimit)
	if err != nil {
		return nil, PageMeta{}, err
	}

	views := make([]CommunityView, 0, len(list))
	for _, c := range list {
		view := CommunityView{
			ID:        c.ID,
			Name:      c.Name,
			Slug:      c.Slug,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
		if c.OwnerRef != nil {
			view.Owner = OwnerSummary{ID: c.OwnerRef.ID, Name: c.OwnerRef.Name}
		}
		views = append(views, view)
	}
	return views, NewPageMeta(total, page), nil
}

// ListCommunityMembers pages over the roster in memory: the full member
// set is loaded first, then sliced.
func (s *CommunityService) ListCommunityMembers(communityID string, page int) ([]CommunityMemberView, PageMeta, error) {
	page = NormalizePage(page)

	_, err := s.repo.FindByID(communityID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, PageMeta{}, pkg.NotFound("", "Community not found")
	}
	if err != nil {
		return nil, PageMeta{}, err
	}

	members, err := s.memberRepo.ListByCommunity(communityID)
	if err != nil {
		return nil, PageMeta{}, err
	}

	total := int64(len(members))
	start := PageOffset(page)
	if start > len(members) {
		start = len(members)
	}
	end := start + PageLimit
	if end > len(members) {
		end = len(members)
	}

	views := make([]CommunityMemberView, 0, end-start)
	for _, m := range members[start:end] {
		view := CommunityMemberView{
			ID:        m.ID,
			Community: communityID,
			CreatedAt: m.CreatedAt,
		}
		if m.UserRef != nil {
			view.User = OwnerSummary{ID: m.UserRef.ID, Name: m.UserRef.Name}
		}
		if m.RoleRef != nil {
			view.Role = RoleSummary{ID: m.RoleRef.ID, Name: m.RoleRef.Name}
		}
		views = append(views, view)
	}
	return views, NewPageMeta(total, page), nil
}

func (s *CommunityService) ListOwned(actorID string, page int) ([]model.Community, PageMeta, error) {
	page = NormalizePage(page)

	total, err := s.repo.CountByOwner(actorID)
	if err != nil {
		return nil, PageMeta{}, err
	}
	list, err := s.repo.ListByOwner(actorID, PageOffset(page), PageLimit)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return list, NewPageMeta(total, page), nil
}

func (s *CommunityService) ListJoined(actorID string, page int) ([]JoinedCommunityView, PageMeta, error) {
	page = NormalizePage(page)

	total, err := s.memberRepo.CountByUser(actorID)
	if err != nil {
		return nil, PageMeta{}, err
	}
	members, err := s.memberRepo.ListByUser(actorID, PageOffset(page), PageLimit)
	if err != nil {
		return nil, PageMeta{}, err
	}

	views := make([]JoinedCommunityView, 0, len(members))
	for _, m := range members {
		if m.CommunityRef == nil {
			continue
		}
		view := JoinedCommunityView{
			ID:        m.CommunityRef.ID,
			Name:      m.CommunityRef.Name,
			Slug:      m.CommunityRef.Slug,
			CreatedAt: m.CreatedAt,
		}
		if m.CommunityRef.OwnerRef != nil {
			view.Owner = OwnerSummary{ID: m.CommunityRef.OwnerRef.ID, Name: m.CommunityRef.OwnerRef.Name}
		}
		views = append(views, view)
	}
	return views, NewPageMeta(total, page), nil
}
