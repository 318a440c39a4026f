package dto

// DeviceTokenDTO 推送令牌注册
type DeviceTokenDTO struct {
	Token    string `json:"token" binding:"required" validate:"min=1,max=255"`
	Platform string `json:"platform" binding:"required,oneof=ios android"`
}
