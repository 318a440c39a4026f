package service

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/model"
	"Joblink/internal/repository"
	"context"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type SocialPostService interface {
	CreatePost(ctx context.Context, d *dto.SocialPostBaseDTO) (*model.SocialPost, error)
	GetPosts(ctx context.Context, page, limit int) (*dto.PagedData, error)
	GetPostById(ctx context.Context, id uint64) (*model.SocialPost, error)
	UpdatePost(ctx context.Context, id uint64, d *dto.SocialPostBaseDTO) error
	DeletePost(ctx context.Context, id uint64) error
}

type SocialPostServiceImpl struct {
	socialPostRepo repository.SocialPostRepo
}

func NewSocialPostService(socialPostRepo repository.SocialPostRepo) SocialPostService {
	return &SocialPostServiceImpl{socialPostRepo: socialPostRepo}
}

func (s *SocialPostServiceImpl) CreatePost(ctx context.Context, d *dto.SocialPostBaseDTO) (*model.SocialPost, error) {
	post := &model.SocialPost{}
	if err := copier.Copy(post, d); err != nil {
		return nil, err
	}
	if err := s.socialPostRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *SocialPostServiceImpl) GetPosts(ctx context.Context, page, limit int) (*dto.PagedData, error) {
	offset := (page - 1) * limit

	var (
		posts []*model.SocialPost
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.socialPostRepo.ListPosts(gctx, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.socialPostRepo.CountPosts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.PagedData{
		Data:       posts,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *SocialPostServiceImpl) GetPostById(ctx context.Context, id uint64) (*model.SocialPost, error) {
	post, err := s.socialPostRepo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *SocialPostServiceImpl) UpdatePost(ctx context.Context, id uint64, d *dto.SocialPostBaseDTO) error {
	post, err := s.socialPostRepo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if err = copier.CopyWithOption(post, d, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	return s.socialPostRepo.UpdatePost(ctx, post)
}

func (s *SocialPostServiceImpl) DeletePost(ctx context.Context, id uint64) error {
	post, err := s.socialPostRepo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return s.socialPostRepo.DeletePost(ctx, id)
}
