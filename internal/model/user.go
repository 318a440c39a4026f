package model

import (
	"time"
)

type User struct {
	ID             uint64   `gorm:"primaryKey"`
	ExternalID     string   `gorm:"type:varchar(128);uniqueIndex:idx_external_id"`
	Email          *string  `gorm:"type:varchar(255)"`
	Segment        *Segment `gorm:"type:varchar(40)"` // 空值表示尚未完成引导
	OnboardingDone bool     `gorm:"not null;default:false"`
	IsActive       bool     `gorm:"not null;default:true"`
	IsDelete       bool     `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	FollowedCompanies []Company `gorm:"many2many:company_follows;joinForeignKey:UserID;joinReferences:CompanyID"`
}

func (User) TableName() string {
	return "users"
}
