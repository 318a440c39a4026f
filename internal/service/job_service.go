package service

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/model"
	"Joblink/internal/pkg/es"
	"Joblink/internal/repository"
	"context"

	"golang.org/x/sync/errgroup"
)

type JobService interface {
	GetFollowedFeed(ctx context.Context, userID uint64, page, limit int) (*dto.PagedData, error)
	GetAllJobs(ctx context.Context, userID uint64, segmentStr string, companyID *uint64, page, limit int) (*dto.PagedData, error)
	GetJobById(ctx context.Context, id uint64) (*model.Job, error)
	SearchJobs(ctx context.Context, keyword, segmentStr string, page, limit int) ([]*es.JobES, error)
	GetSuggestions(ctx context.Context, keyword string) ([]string, error)
	BulkUpsertJobs(ctx context.Context, d *dto.BulkJobsDTO) error
}

type JobServiceImpl struct {
	jobRepo        repository.JobRepo
	userRepo       repository.UserRepo
	companyService CompanyService
	jobSearchRepo  es.JobRepo
}

func NewJobService(jobRepo repository.JobRepo, userRepo repository.UserRepo, companyService CompanyService, jobSearchRepo es.JobRepo) JobService {
	return &JobServiceImpl{
		jobRepo:        jobRepo,
		userRepo:       userRepo,
		companyService: companyService,
		jobSearchRepo:  jobSearchRepo,
	}
}

// GetFollowedFeed 关注公司职位流：仅关注公司 + 与用户经验分层精确相等。
// 未完成引导直接拒绝；零关注时不触达职位表，返回空页。
func (s *JobServiceImpl) GetFollowedFeed(ctx context.Context, userID uint64, page, limit int) (*dto.PagedData, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.OnboardingDone || user.Segment == nil {
		return nil, ErrOnboardingRequired
	}

	companyIDs, err := s.companyService.GetFollowedCompanyIds(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(companyIDs) == 0 {
		return &dto.PagedData{
			Data:       []*model.Job{},
			Pagination: dto.NewPagination(page, limit, 0),
		}, nil
	}

	offset := (page - 1) * limit
	segment := *user.Segment

	var (
		jobs  []*model.Job
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.jobRepo.GetFeedJobs(gctx, companyIDs, segment, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.jobRepo.CountFeedJobs(gctx, companyIDs, segment)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return &dto.PagedData{
		Data:       jobs,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// GetAllJobs 全量职位列表，不看关注关系。
// segment 参数缺省时回落到用户自己的分层。
func (s *JobServiceImpl) GetAllJobs(ctx context.Context, userID uint64, segmentStr string, companyID *uint64, page, limit int) (*dto.PagedData, error) {
	var segment model.Segment
	if segmentStr != "" {
		var err error
		segment, err = model.ParseSegment(segmentStr)
		if err != nil {
			return nil, ErrParamInvalid
		}
	} else {
		user, err := s.userRepo.GetUserById(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		if user.Segment == nil {
			return nil, ErrSegmentRequired
		}
		segment = *user.Segment
	}

	offset := (page - 1) * limit

	var (
		jobs  []*model.Job
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.jobRepo.ListJobs(gctx, segment, companyID, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.jobRepo.CountJobs(gctx, segment, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.PagedData{
		Data:       jobs,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *JobServiceImpl) GetJobById(ctx context.Context, id uint64) (*model.Job, error) {
	job, err := s.jobRepo.GetJobById(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// SearchJobs 关键词检索走 ES，segment 选填
func (s *JobServiceImpl) SearchJobs(ctx context.Context, keyword, segmentStr string, page, limit int) ([]*es.JobES, error) {
	if segmentStr != "" {
		if _, err := model.ParseSegment(segmentStr); err != nil {
			return nil, ErrParamInvalid
		}
	}
	from := (page - 1) * limit
	return s.jobSearchRepo.SearchJobs(ctx, keyword, segmentStr, from, limit)
}

func (s *JobServiceImpl) GetSuggestions(ctx context.Context, keyword string) ([]string, error) {
	return s.jobSearchRepo.GetSuggestions(ctx, keyword)
}

// BulkUpsertJobs 管理端批量写入职位，下游提醒与索引由 CDC 消费者驱动
func (s *JobServiceImpl) BulkUpsertJobs(ctx context.Context, d *dto.BulkJobsDTO) error {
	jobs := make([]*model.Job, 0, len(d.Jobs))
	for _, item := range d.Jobs {
		segment, err := model.ParseSegment(item.Segment)
		if err != nil {
			return ErrParamInvalid
		}
		job := &model.Job{
			Title:     item.Title,
			CompanyID: item.CompanyID,
			Segment:   segment,
			ApplyLink: item.ApplyLink,
		}
		if item.ID != nil {
			job.ID = *item.ID
		}
		jobs = append(jobs, job)
	}
	return s.jobRepo.BulkUpsertJobs(ctx, jobs)
}
