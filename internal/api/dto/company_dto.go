package dto

// CompanyUpsertDTO 公司 - 管理端批量写入的单行
type CompanyUpsertDTO struct {
	Name     string `json:"name" binding:"required" validate:"min=1,max=255"`
	Category string `json:"category" binding:"required"`
	LogoURL  string `json:"logo_url" validate:"omitempty,max=512"`
}

// BulkCompaniesDTO 公司 - 管理端批量写入
type BulkCompaniesDTO struct {
	Companies []*CompanyUpsertDTO `json:"companies" binding:"required,min=1,dive"`
}
