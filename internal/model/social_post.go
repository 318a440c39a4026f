package model

import (
	"time"
)

type SocialPost struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  *string   `gorm:"type:varchar(512)" json:"imageUrl,omitempty"`
	LinkURL   *string   `gorm:"type:varchar(512)" json:"linkUrl,omitempty"`
	IsDeleted bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (SocialPost) TableName() string {
	return "social_posts"
}
