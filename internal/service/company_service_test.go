package service

import (
	"Joblink/internal/model"
	"Joblink/internal/pkg/consts"
	"Joblink/internal/pkg/redis"
	"Joblink/internal/repository"
	"context"
	"sort"
	"strconv"
	"testing"
	"time"
)

func newCompanyService(t *testing.T) (*CompanyServiceImpl, *testFollowFixture) {
	t.Helper()

	db := newTestDB(t)
	newTestRedis(t)

	companyRepo := repository.NewCompanyRepo(db)
	companyFollowRepo := repository.NewCompanyFollowRepo(db)
	svc := NewCompanyService(companyRepo, companyFollowRepo).(*CompanyServiceImpl)

	companies := []*model.Company{
		{ID: 1, Name: "Alpha", Category: model.CategoryTech},
		{ID: 2, Name: "Beta", Category: model.CategoryFinance},
	}
	if err := db.Create(companies).Error; err != nil {
		t.Fatalf("seed companies: %v", err)
	}
	follows := []*model.CompanyFollow{
		{UserID: 1, CompanyID: 1},
		{UserID: 1, CompanyID: 2},
	}
	if err := db.Create(follows).Error; err != nil {
		t.Fatalf("seed follows: %v", err)
	}

	return svc, &testFollowFixture{userID: 1, companyIDs: []string{"1", "2"}}
}

type testFollowFixture struct {
	userID     uint64
	companyIDs []string
}

func cachedFollowedSet(t *testing.T, userID uint64) []string {
	t.Helper()
	members, err := redis.GetSet(context.Background(), consts.UserFollowedSetKey+strconv.FormatUint(userID, 10))
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	sort.Strings(members)
	return members
}

func TestRefreshFollowedSetRebuildsFromDB(t *testing.T) {
	svc, fx := newCompanyService(t)
	ctx := context.Background()

	// 缓存里残留过期成员，重建后必须以数据库为准
	key := consts.UserFollowedSetKey + "1"
	if err := redis.SAdd(ctx, key, "9"); err != nil {
		t.Fatalf("poison cache: %v", err)
	}

	svc.refreshFollowedSet(ctx, fx.userID)

	members := cachedFollowedSet(t, fx.userID)
	if len(members) != len(fx.companyIDs) {
		t.Fatalf("cached set = %v, want %v", members, fx.companyIDs)
	}
	for i, want := range fx.companyIDs {
		if members[i] != want {
			t.Errorf("cached set[%d] = %s, want %s", i, members[i], want)
		}
	}
}

func TestRefreshFollowedSetSkipsWhenLocked(t *testing.T) {
	svc, fx := newCompanyService(t)
	ctx := context.Background()

	// 锁被失效方持有时回填必须让路，不得覆盖写入
	lockKey := consts.UserFollowedSetLock + "1"
	locked, err := redis.TryLock(ctx, lockKey, "holder", time.Minute, 1)
	if err != nil || !locked {
		t.Fatalf("acquire lock: locked=%v err=%v", locked, err)
	}

	svc.refreshFollowedSet(ctx, fx.userID)

	members := cachedFollowedSet(t, fx.userID)
	if len(members) != 0 {
		t.Fatalf("refresh wrote through a held lock: %v", members)
	}
}

func TestFollowInvalidatesCachedSet(t *testing.T) {
	svc, fx := newCompanyService(t)
	ctx := context.Background()

	key := consts.UserFollowedSetKey + "1"
	if err := redis.SAdd(ctx, key, "1", "2"); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	if err := svc.UnfollowCompany(ctx, fx.userID, 2); err != nil {
		t.Fatalf("unfollow: %v", err)
	}

	if members := cachedFollowedSet(t, fx.userID); len(members) != 0 {
		t.Fatalf("cache not invalidated after unfollow: %v", members)
	}
}
