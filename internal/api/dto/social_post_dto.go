package dto

// SocialPostBaseDTO 动态 - 新增或修改
type SocialPostBaseDTO struct {
	Title    string  `json:"title" binding:"required" validate:"min=1,max=255"`
	Content  string  `json:"content" binding:"required" validate:"min=1,max=5000"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,max=512"`
	LinkURL  *string `json:"link_url,omitempty" validate:"omitempty,max=512"`
}
