package model

import "time"

// Role kinds derived from the name at creation time. Authorization checks
// compare the kind tag instead of the free-form name.
const (
	RoleKindCustom    = 0
	RoleKindAdmin     = 1
	RoleKindModerator = 2
	RoleKindMember    = 3
)

const (
	RoleNameAdmin     = "Community Admin"
	RoleNameModerator = "Community Moderator"
	RoleNameMember    = "Community Member"
)

type Role struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Kind      int       `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func KindForRoleName(name string) int {
	switch name {
	case RoleNameAdmin:
		return RoleKindAdmin
	case RoleNameModerator:
		return RoleKindModerator
	case RoleNameMember:
		return RoleKindMember
	default:
		return RoleKindCustom
	}
}
