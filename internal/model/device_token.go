package model

import "time"

type DeviceToken struct {
	Token     string    `gorm:"primaryKey;type:varchar(255)" json:"token"`
	UserID    uint64    `gorm:"not null;index:idx_device_user_id" json:"userId"`
	Platform  string    `gorm:"type:varchar(20);not null" json:"platform"` // ios / android
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (DeviceToken) TableName() string {
	return "device_tokens"
}
