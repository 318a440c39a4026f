package service

import (
	"Joblink/internal/model"
	"Joblink/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newJobService(t *testing.T) (JobService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	newTestRedis(t)

	jobRepo := repository.NewJobRepo(db)
	userRepo := repository.NewUserRepo(db)
	companyRepo := repository.NewCompanyRepo(db)
	companyFollowRepo := repository.NewCompanyFollowRepo(db)
	companySvc := NewCompanyService(companyRepo, companyFollowRepo)

	return NewJobService(jobRepo, userRepo, companySvc, nil), db
}

func seedSegment(s model.Segment) *model.Segment {
	return &s
}

// seedFeedFixture 用户 1 已完成引导（FRESHER 分层），关注公司 1、2。
// 公司 3 无人关注。职位按 CreatedAt 递增写入。
func seedFeedFixture(t *testing.T, db *gorm.DB) {
	t.Helper()

	users := []*model.User{
		{ID: 1, ExternalID: "ext-1", Segment: seedSegment(model.SegmentFresher), OnboardingDone: true, IsActive: true},
		{ID: 2, ExternalID: "ext-2", IsActive: true},
		{ID: 3, ExternalID: "ext-3", Segment: seedSegment(model.SegmentFresher), OnboardingDone: true, IsActive: true},
	}
	if err := db.Create(users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}

	companies := []*model.Company{
		{ID: 1, Name: "Alpha", Category: model.CategoryTech},
		{ID: 2, Name: "Beta", Category: model.CategoryFinance},
		{ID: 3, Name: "Gamma", Category: model.CategoryTech},
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

	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	jobs := []*model.Job{
		{ID: 1, Title: "Backend Intern", CompanyID: 1, Segment: model.SegmentFresher, ApplyLink: "https://a/1", CreatedAt: base},
		{ID: 2, Title: "Platform Engineer", CompanyID: 1, Segment: model.SegmentOneToThree, ApplyLink: "https://a/2", CreatedAt: base.Add(time.Hour)},
		{ID: 3, Title: "Data Analyst", CompanyID: 2, Segment: model.SegmentFresher, ApplyLink: "https://b/3", CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Title: "QA Engineer", CompanyID: 3, Segment: model.SegmentFresher, ApplyLink: "https://c/4", CreatedAt: base.Add(3 * time.Hour)},
		{ID: 5, Title: "Junior Developer", CompanyID: 2, Segment: model.SegmentFresher, ApplyLink: "https://b/5", CreatedAt: base.Add(4 * time.Hour)},
	}
	if err := db.Create(jobs).Error; err != nil {
		t.Fatalf("seed jobs: %v", err)
	}
}

func feedJobs(t *testing.T, paged interface{}) []*model.Job {
	t.Helper()
	jobs, ok := paged.([]*model.Job)
	if !ok {
		t.Fatalf("unexpected data type %T", paged)
	}
	return jobs
}

func TestGetFollowedFeedFiltersAndOrder(t *testing.T) {
	svc, db := newJobService(t)
	seedFeedFixture(t, db)
	ctx := context.Background()

	paged, err := svc.GetFollowedFeed(ctx, 1, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	jobs := feedJobs(t, paged.Data)
	// 命中的只有职位 1、3、5：关注的公司 ∩ 用户分层，按时间倒序
	wantIDs := []uint64{5, 3, 1}
	if len(jobs) != len(wantIDs) {
		t.Fatalf("got %d jobs, want %d", len(jobs), len(wantIDs))
	}
	for i, want := range wantIDs {
		if jobs[i].ID != want {
			t.Errorf("jobs[%d].ID = %d, want %d", i, jobs[i].ID, want)
		}
	}
	if paged.Pagination.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", paged.Pagination.TotalCount)
	}
}

func TestGetFollowedFeedPagination(t *testing.T) {
	svc, db := newJobService(t)
	seedFeedFixture(t, db)
	ctx := context.Background()

	page1, err := svc.GetFollowedFeed(ctx, 1, 1, 2)
	if err != nil {
		t.Fatalf("page 1: unexpected error %v", err)
	}
	jobs := feedJobs(t, page1.Data)
	if len(jobs) != 2 {
		t.Fatalf("page 1 size = %d, want 2", len(jobs))
	}
	p := page1.Pagination
	if p.TotalCount != 3 || p.TotalPages != 2 || !p.HasNextPage || p.HasPrevPage {
		t.Fatalf("page 1 pagination mismatch: %+v", p)
	}

	page2, err := svc.GetFollowedFeed(ctx, 1, 2, 2)
	if err != nil {
		t.Fatalf("page 2: unexpected error %v", err)
	}
	jobs = feedJobs(t, page2.Data)
	if len(jobs) != 1 {
		t.Fatalf("page 2 size = %d, want 1", len(jobs))
	}
	if jobs[0].ID != 1 {
		t.Errorf("page 2 job = %d, want 1", jobs[0].ID)
	}
	p = page2.Pagination
	if p.HasNextPage || !p.HasPrevPage {
		t.Fatalf("page 2 pagination mismatch: %+v", p)
	}
}

func TestGetFollowedFeedOnboardingGate(t *testing.T) {
	svc, db := newJobService(t)
	seedFeedFixture(t, db)
	ctx := context.Background()

	if _, err := svc.GetFollowedFeed(ctx, 2, 1, 10); !errors.Is(err, ErrOnboardingRequired) {
		t.Fatalf("got %v, want ErrOnboardingRequired", err)
	}

	if _, err := svc.GetFollowedFeed(ctx, 999, 1, 10); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user: got %v, want ErrUserNotFound", err)
	}
}

func TestGetFollowedFeedNoFollows(t *testing.T) {
	svc, db := newJobService(t)
	seedFeedFixture(t, db)
	ctx := context.Background()

	// 用户 3 完成引导但零关注，不触达职位表
	paged, err := svc.GetFollowedFeed(ctx, 3, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jobs := feedJobs(t, paged.Data)
	if len(jobs) != 0 {
		t.Fatalf("got %d jobs, want 0", len(jobs))
	}
	p := paged.Pagination
	if p.TotalCount != 0 || p.TotalPages != 0 || p.HasNextPage || p.HasPrevPage {
		t.Fatalf("empty feed pagination mismatch: %+v", p)
	}
}

func TestGetAllJobsSegmentHandling(t *testing.T) {
	svc, db := newJobService(t)
	seedFeedFixture(t, db)
	ctx := context.Background()

	// 显式 segment 参数生效，与关注关系无关
	paged, err := svc.GetAllJobs(ctx, 1, string(model.SegmentOneToThree), nil, 1, 10)
	if err != nil {
		t.Fatalf("explicit segment: unexpected error %v", err)
	}
	jobs := feedJobs(t, paged.Data)
	if len(jobs) != 1 || jobs[0].ID != 2 {
		t.Fatalf("explicit segment: got %v", jobs)
	}

	// 缺省回落到用户自身分层，含未关注公司的职位
	paged, err = svc.GetAllJobs(ctx, 1, "", nil, 1, 10)
	if err != nil {
		t.Fatalf("fallback segment: unexpected error %v", err)
	}
	if paged.Pagination.TotalCount != 4 {
		t.Fatalf("fallback segment TotalCount = %d, want 4", paged.Pagination.TotalCount)
	}

	// 未设置分层且无参数
	if _, err = svc.GetAllJobs(ctx, 2, "", nil, 1, 10); !errors.Is(err, ErrSegmentRequired) {
		t.Fatalf("no segment: got %v, want ErrSegmentRequired", err)
	}

	// 非法 segment 参数
	if _, err = svc.GetAllJobs(ctx, 1, "SENIOR", nil, 1, 10); !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("bad segment: got %v, want ErrParamInvalid", err)
	}

	// 按公司过滤
	companyID := uint64(2)
	paged, err = svc.GetAllJobs(ctx, 1, string(model.SegmentFresher), &companyID, 1, 10)
	if err != nil {
		t.Fatalf("company filter: unexpected error %v", err)
	}
	if paged.Pagination.TotalCount != 2 {
		t.Fatalf("company filter TotalCount = %d, want 2", paged.Pagination.TotalCount)
	}
}
