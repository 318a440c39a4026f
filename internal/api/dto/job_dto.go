package dto

// JobUpsertDTO 职位 - 管理端批量写入的单行
type JobUpsertDTO struct {
	ID        *uint64 `json:"id,omitempty"`
	Title     string  `json:"title" binding:"required" validate:"min=1,max=255"`
	CompanyID uint64  `json:"company_id" binding:"required"`
	Segment   string  `json:"segment" binding:"required"`
	ApplyLink string  `json:"apply_link" binding:"required" validate:"max=512"`
}

// BulkJobsDTO 职位 - 管理端批量写入
type BulkJobsDTO struct {
	Jobs []*JobUpsertDTO `json:"jobs" binding:"required,min=1,dive"`
}
