package model

import (
	"time"
)

type Job struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	CompanyID uint64    `gorm:"not null;index:idx_jobs_company_id" json:"companyId"`
	Segment   Segment   `gorm:"type:varchar(40);not null;index:idx_jobs_segment" json:"segment"`
	ApplyLink string    `gorm:"type:varchar(512);not null" json:"applyLink"`
	CreatedAt time.Time `gorm:"index:idx_jobs_created_at" json:"createdAt"`

	// 展示用回引，不构成归属关系
	Company Company `gorm:"foreignKey:CompanyID;references:ID" json:"company"`
}

func (Job) TableName() string {
	return "jobs"
}
