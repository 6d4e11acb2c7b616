package model

import "time"

type Member struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Community string    `gorm:"size:32;not null;index;uniqueIndex:uk_community_user" json:"community"`
	User      string    `gorm:"size:32;not null;uniqueIndex:uk_community_user" json:"user"`
	Role      string    `gorm:"size:32;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`

	UserRef      *User      `gorm:"foreignKey:User;references:ID" json:"-"`
	RoleRef      *Role      `gorm:"foreignKey:Role;references:ID" json:"-"`
	CommunityRef *Community `gorm:"foreignKey:Community;references:ID" json:"-"`
}
