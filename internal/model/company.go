package model

import "time"

type Company struct {
	ID        uint64          `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_company_name" json:"name"`
	Category  CompanyCategory `gorm:"type:varchar(40);not null" json:"category"`
	LogoURL   string          `gorm:"type:varchar(512)" json:"logoUrl"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (Company) TableName() string {
	return "companies"
}
