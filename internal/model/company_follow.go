package model

import "time"

type CompanyFollow struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	CompanyID uint64    `gorm:"primaryKey;index:idx_company_id" json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CompanyFollow) TableName() string {
	return "company_follows"
}
