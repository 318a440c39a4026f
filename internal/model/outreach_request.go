package model

import (
	"time"
)

type OutreachRequest struct {
	ID          uint64         `gorm:"primaryKey" json:"id"`
	UserID      uint64         `gorm:"not null;index:idx_outreach_user_created,priority:1" json:"userId"`
	Email       string         `gorm:"type:varchar(255);not null" json:"email"`
	CompanyName string         `gorm:"type:varchar(255);not null" json:"companyName"` // 自由文本，非外键
	Reason      string         `gorm:"type:text;not null" json:"reason"`
	JobID       *uint64        `json:"jobId,omitempty"`
	ResumeLink  *string        `gorm:"type:varchar(512)" json:"resumeLink,omitempty"`
	Message     *string        `gorm:"type:text" json:"message,omitempty"`
	Status      OutreachStatus `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_outreach_status" json:"status"`
	CreatedAt   time.Time      `gorm:"index:idx_outreach_user_created,priority:2" json:"createdAt"`
	ReviewedAt  *time.Time     `json:"reviewedAt,omitempty"`
	SentAt      *time.Time     `json:"sentAt,omitempty"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (OutreachRequest) TableName() string {
	return "outreach_requests"
}
