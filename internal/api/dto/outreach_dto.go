package dto

// CreateOutreachDTO 内推请求 - 用户提交
type CreateOutreachDTO struct {
	Email       string  `json:"email" binding:"required,email"`
	CompanyName string  `json:"company_name" binding:"required" validate:"min=1,max=255"`
	Reason      string  `json:"reason" binding:"required" validate:"min=1,max=2000"`
	JobID       *uint64 `json:"job_id,omitempty"`
	ResumeLink  *string `json:"resume_link,omitempty" validate:"omitempty,max=512"`
	Message     *string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

// OutreachStatusDTO 内推请求 - 管理端状态流转
type OutreachStatusDTO struct {
	Status string `json:"status" binding:"required"`
}
