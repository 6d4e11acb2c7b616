package model

import "time"

type Community struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex;size:128;not null" json:"slug"`
	Owner     string    `gorm:"size:32;not null;index" json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerRef *User `gorm:"foreignKey:Owner;references:ID" json:"-"`
}
