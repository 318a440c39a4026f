package es

import "time"

// JobES 写入 ES 的职位文档
type JobES struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	CompanyID   uint64    `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Segment     string    `json:"segment"`
	ApplyLink   string    `json:"apply_link"`
	CreatedAt   time.Time `json:"created_at"`

	Sort []interface{} `json:"-"`
}
