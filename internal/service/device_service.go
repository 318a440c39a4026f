package service

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/model"
	"Joblink/internal/repository"
	"context"
)

type DeviceService interface {
	RegisterToken(ctx context.Context, userID uint64, d *dto.DeviceTokenDTO) error
	UnregisterToken(ctx context.Context, token string) error
}

type DeviceServiceImpl struct {
	deviceTokenRepo repository.DeviceTokenRepo
}

func NewDeviceService(deviceTokenRepo repository.DeviceTokenRepo) DeviceService {
	return &DeviceServiceImpl{deviceTokenRepo: deviceTokenRepo}
}

// RegisterToken 注册推送令牌，换机换绑直接覆盖归属
func (s *DeviceServiceImpl) RegisterToken(ctx context.Context, userID uint64, d *dto.DeviceTokenDTO) error {
	token := &model.DeviceToken{
		Token:    d.Token,
		UserID:   userID,
		Platform: d.Platform,
	}
	return s.deviceTokenRepo.UpsertToken(ctx, token)
}

func (s *DeviceServiceImpl) UnregisterToken(ctx context.Context, token string) error {
	return s.deviceTokenRepo.DeleteToken(ctx, token)
}
