package service

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/model"
	"Joblink/internal/pkg/consts"
	"Joblink/internal/pkg/redis"
	"Joblink/internal/pkg/util"
	"Joblink/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type CompanyService interface {
	ListCompanies(ctx context.Context) ([]*model.Company, error)
	GetCompanyById(ctx context.Context, id uint64) (*model.Company, error)
	FollowCompany(ctx context.Context, userID, companyID uint64) error
	UnfollowCompany(ctx context.Context, userID, companyID uint64) error
	GetFollowedCompanyIds(ctx context.Context, userID uint64) ([]uint64, error)
	GetFollowedCompanies(ctx context.Context, userID uint64) ([]*model.Company, error)
	GetFollowerCount(ctx context.Context, companyID uint64) (int64, error)
	BulkUpsertCompanies(ctx context.Context, d *dto.BulkCompaniesDTO) error
}

type CompanyServiceImpl struct {
	companyRepo       repository.CompanyRepo
	companyFollowRepo repository.CompanyFollowRepo
}

func NewCompanyService(companyRepo repository.CompanyRepo, companyFollowRepo repository.CompanyFollowRepo) CompanyService {
	return &CompanyServiceImpl{
		companyRepo:       companyRepo,
		companyFollowRepo: companyFollowRepo,
	}
}

func (s *CompanyServiceImpl) ListCompanies(ctx context.Context) ([]*model.Company, error) {
	return s.companyRepo.ListCompanies(ctx)
}

func (s *CompanyServiceImpl) GetCompanyById(ctx context.Context, id uint64) (*model.Company, error) {
	company, err := s.companyRepo.GetCompanyById(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// FollowCompany 关注公司，重复关注静默成功
func (s *CompanyServiceImpl) FollowCompany(ctx context.Context, userID, companyID uint64) error {
	company, err := s.companyRepo.GetCompanyById(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}

	follow := &model.CompanyFollow{
		UserID:    userID,
		CompanyID: companyID,
		CreatedAt: time.Now(),
	}
	if err = s.companyFollowRepo.CreateCompanyFollow(ctx, follow); err != nil {
		return err
	}

	s.invalidateFollowCaches(ctx, userID)
	return nil
}

func (s *CompanyServiceImpl) UnfollowCompany(ctx context.Context, userID, companyID uint64) error {
	follow := &model.CompanyFollow{
		UserID:    userID,
		CompanyID: companyID,
	}
	if err := s.companyFollowRepo.DeleteCompanyFollow(ctx, follow); err != nil {
		return err
	}

	s.invalidateFollowCaches(ctx, userID)
	return nil
}

// GetFollowedCompanyIds 关注集合读路径，缓存未命中时回源并异步回填。
// 空关注集合不写缓存，短路逻辑由上层处理。
func (s *CompanyServiceImpl) GetFollowedCompanyIds(ctx context.Context, userID uint64) ([]uint64, error) {
	key := consts.UserFollowedSetKey + strconv.FormatUint(userID, 10)

	members, err := redis.GetSet(ctx, key)
	if err == nil && len(members) > 0 {
		if ids, convErr := util.StrSliceToUInt64Slice(members); convErr == nil {
			return ids, nil
		}
	}

	ids, err := s.companyFollowRepo.GetFollowedCompanyIds(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ids, nil
	}

	go s.refreshFollowedSet(context.Background(), userID)

	return ids, nil
}

// refreshFollowedSet 重建用户关注集合缓存。
// 回填与失效共用同一把锁，且在锁内重读数据库，
// 慢回填不会用调用前的旧集合覆盖刚写入的失效。
func (s *CompanyServiceImpl) refreshFollowedSet(ctx context.Context, userID uint64) {
	lockKey := consts.UserFollowedSetLock + strconv.FormatUint(userID, 10)
	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, lockKey, lockValue, time.Second*3, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, lockKey, lockValue)

	ids, err := s.companyFollowRepo.GetFollowedCompanyIds(ctx, userID)
	if err != nil {
		return
	}

	key := consts.UserFollowedSetKey + strconv.FormatUint(userID, 10)
	_ = redis.DeleteKey(ctx, key)
	if len(ids) == 0 {
		return
	}

	members := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		members = append(members, strconv.FormatUint(id, 10))
	}
	if err = redis.SAdd(ctx, key, members...); err != nil {
		return
	}
	_ = redis.GetRdbClient().Expire(ctx, key, time.Hour*1).Err()
}

func (s *CompanyServiceImpl) GetFollowedCompanies(ctx context.Context, userID uint64) ([]*model.Company, error) {
	ids, err := s.GetFollowedCompanyIds(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Company{}, nil
	}
	return s.companyRepo.GetCompanyByIds(ctx, ids)
}

// GetFollowerCount 关注者数量，短 TTL 缓存
func (s *CompanyServiceImpl) GetFollowerCount(ctx context.Context, companyID uint64) (int64, error) {
	key := consts.CompanyFollowerCount + strconv.FormatUint(companyID, 10)

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		return strconv.ParseInt(valStr, 10, 64)
	}

	count, err := s.companyFollowRepo.GetFollowerCount(ctx, companyID)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Hour*1)
	return count, nil
}

// BulkUpsertCompanies 管理端批量写入公司
func (s *CompanyServiceImpl) BulkUpsertCompanies(ctx context.Context, d *dto.BulkCompaniesDTO) error {
	companies := make([]*model.Company, 0, len(d.Companies))
	for _, item := range d.Companies {
		category, err := model.ParseCompanyCategory(item.Category)
		if err != nil {
			return ErrParamInvalid
		}
		companies = append(companies, &model.Company{
			Name:     item.Name,
			Category: category,
			LogoURL:  item.LogoURL,
		})
	}
	return s.companyRepo.BulkUpsertCompanies(ctx, companies)
}

// invalidateFollowCaches 与 refreshFollowedSet 抢同一把锁再删除；
// 抢不到也照删，最坏情况退化为一次可被重建修复的旧集合。
func (s *CompanyServiceImpl) invalidateFollowCaches(ctx context.Context, userID uint64) {
	lockKey := consts.UserFollowedSetLock + strconv.FormatUint(userID, 10)
	lockValue := uuid.NewString()
	locked, _ := redis.TryLock(ctx, lockKey, lockValue, time.Second*3, 3)

	_ = redis.DeleteKey(ctx, consts.UserFollowedSetKey+strconv.FormatUint(userID, 10))

	if locked {
		redis.UnLock(ctx, lockKey, lockValue)
	}
}
