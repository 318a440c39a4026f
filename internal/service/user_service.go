package service

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/model"
	"Joblink/internal/pkg/consts"
	"Joblink/internal/pkg/redis"
	"Joblink/internal/pkg/security"
	"Joblink/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type UserService interface {
	ProvisionUser(ctx context.Context, claims *security.IdentityClaims) (*model.User, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUserInfo(ctx context.Context, id uint64, d *dto.UpdateUserDTO) error
	CancelUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// ProvisionUser 按身份提供方的主体标识取用户，首次见到时落库。
// 命中缓存时不触达数据库，认证中间件每个请求都会走到这里。
func (s *UserServiceImpl) ProvisionUser(ctx context.Context, claims *security.IdentityClaims) (*model.User, error) {
	key := consts.UserInfoKey + claims.ExternalID
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if value != "" {
		var user *model.User
		if err = json.Unmarshal([]byte(value), &user); err == nil {
			return user, nil
		}
	}

	user := &model.User{
		ExternalID: claims.ExternalID,
	}
	if claims.Email != "" {
		user.Email = &claims.Email
	}

	user, err = s.userRepo.UpsertByExternalId(ctx, user)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, UnExpectedError
	}

	jsonStr, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err = redis.SetWithExpiration(ctx, key, string(jsonStr), time.Hour*1); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistPrefix+signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.UserID = &user.ID
	return userDTO, nil
}

// UpdateUserInfo 资料更新，填写 segment 即视为完成引导
func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, d *dto.UpdateUserDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if d.Segment != nil {
		segment, err := model.ParseSegment(*d.Segment)
		if err != nil {
			return ErrParamInvalid
		}
		user.Segment = &segment
		user.OnboardingDone = true
	}
	if d.Email != nil {
		user.Email = d.Email
	}

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, consts.UserInfoKey+user.ExternalID)
	return nil
}

func (s *UserServiceImpl) CancelUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, consts.UserInfoKey+user.ExternalID)
	_ = redis.DeleteKey(ctx, consts.UserFollowedSetKey+strconv.FormatUint(id, 10))
	return nil
}
