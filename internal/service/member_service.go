package service

import (
	"errors"
	"time"

	"Folks_Community/internal/model"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type MemberService struct {
	repo          *mysql.MemberRepository
	communityRepo *mysql.CommunityRepository
	userRepo      *mysql.UserRepository
	roleRepo      *mysql.RoleRepository
	events        *pkg.EventProducer
}

func NewMemberService(db *gorm.DB, events *pkg.EventProducer) *MemberService {
	return &MemberService{
		repo:          &mysql.MemberRepository{DB: db},
		communityRepo: &mysql.CommunityRepository{DB: db},
		userRepo:      &mysql.UserRepository{DB: db},
		roleRepo:      &mysql.RoleRepository{DB: db},
		events:        events,
	}
}

// actorRoleKind scans the community's full roster for the acting user's
// membership and reports its role kind. Every call re-reads the roster;
// decisions are never cached, so a concurrent role change is picked up
// by the next check.
func (s *MemberService) actorRoleKind(communityID, actorID string) (int, bool, error) {
	members, err := s.repo.ListByCommunity(communityID)
	if err != nil {
		return 0, false, err
	}
	for _, m := range members {
		if m.User == actorID && m.RoleRef != nil {
			return m.RoleRef.Kind, true, nil
		}
	}
	return 0, false, nil
}

// canAddMembers: adding requires the admin role.
func (s *MemberService) canAddMembers(communityID, actorID string) (bool, error) {
	kind, ok, err := s.actorRoleKind(communityID, actorID)
	if err != nil {
		return false, err
	}
	return ok && kind == model.RoleKindAdmin, nil
}

// canRemoveMembers: removal is allowed to admins and moderators. The
// asymmetry with canAddMembers is intentional.
func (s *MemberService) canRemoveMembers(communityID, actorID string) (bool, error) {
	kind, ok, err := s.actorRoleKind(communityID, actorID)
	if err != nil {
		return false, err
	}
	return ok && (kind == model.RoleKindAdmin || kind == model.RoleKindModerator), nil
}

// AddMember puts a user into a community. An unknown role id is not an
// error: a fresh "Community Member" role is minted and used instead.
func (s *MemberService) AddMember(actorID, communityID, userID, roleID string) (*model.Member, error) {
	_, err := s.communityRepo.FindByID(communityID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFound("community", "Community not found.")
	}
	if err != nil {
		return nil, err
	}

	allowed, err := s.canAddMembers(communityID, actorID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, pkg.NotAllowed()
	}

	_, err = s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFound("user", "User not found.")
	}
	if err != nil {
		return nil, err
	}

	role, err := s.roleRepo.FindByID(roleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		role = &model.Role{
			ID:   pkg.NewID(),
			Name: model.RoleNameMember,
			Kind: model.RoleKindMember,
		}
		if err := s.roleRepo.Create(role); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsInCommunity(communityID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkg.Exists("", "User is already added in the community.")
	}

	member := &model.Member{
		ID:        pkg.NewID(),
		Community: communityID,
		User:      userID,
		Role:      role.ID,
	}
	if err := s.repo.Create(member); err != nil {
		return nil, err
	}

	emitEvent(s.events, lifecycleEvent{
		Type:      EventMemberAdded,
		Community: communityID,
		Member:    member.ID,
		User:      userID,
		At:        time.Now(),
	})
	return member, nil
}

// RemoveMember deletes a membership row after the remove check passes
// for the acting user within the same community.
func (s *MemberService) RemoveMember(actorID, memberID string) error {
	member, err := s.repo.FindByID(memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkg.NotFound("", "Member not found.")
	}
	if err != nil {
		return err
	}

	allowed, err := s.canRemoveMembers(member.Community, actorID)
	if err != nil {
		return err
	}
	if !allowed {
		return pkg.NotAllowed()
	}

	if err := s.repo.Delete(member.ID); err != nil {
		return err
	}

	emitEvent(s.events, lifecycleEvent{
		Type:      EventMemberRemoved,
		Community: member.Community,
		Member:    member.ID,
		User:      member.User,
		At:        time.Now(),
	})
	return nil
}
