package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
	"github.com/MKhiriev/seven-sport-admin/internal/cache"
	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/internal/validators"
	"github.com/MKhiriev/seven-sport-admin/models"
)

type blogService struct {
	adapter   adapter.ServerAdapter
	cache     *cache.List[models.Blog]
	validator validators.Validator
	logger    *logger.Logger
}

// NewBlogService returns a BlogService backed by the given server
// adapter with an empty list cache.
func NewBlogService(serverAdapter adapter.ServerAdapter, validator validators.Validator, log *logger.Logger) BlogService {
	return &blogService{
		adapter:   serverAdapter,
		cache:     &cache.List[models.Blog]{},
		validator: validator,
		logger:    log.GetChildLogger(),
	}
}

func (s *blogService) Load(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.adapter.Blogs(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("load blogs")
		return nil, fmt.Errorf("load blogs: %w", err)
	}

	s.cache.Replace(blogs)
	return s.cache.Items(), nil
}

func (s *blogService) Items() []models.Blog {
	return s.cache.Items()
}

func (s *blogService) Create(ctx context.Context, input models.BlogInput) error {
	input.ID = ""
	if err := s.validator.Validate(ctx, input); err != nil {
		return err
	}

	if err := s.adapter.CreateBlog(ctx, input); err != nil {
		s.logger.Error().Err(err).Msg("create blog")
		return fmt.Errorf("create blog: %w", err)
	}

	_, err := s.Load(ctx)
	return err
}

func (s *blogService) Update(ctx context.Context, input models.BlogInput) error {
	if input.ID == "" {
		return ErrEmptyID
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return err
	}

	if err := s.adapter.UpdateBlog(ctx, input); err != nil {
		s.logger.Error().Err(err).Str("id", input.ID).Msg("update blog")
		return fmt.Errorf("update blog: %w", err)
	}

	_, err := s.Load(ctx)
	return err
}

func (s *blogService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	if err := s.adapter.DeleteBlog(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("delete blog")
		return fmt.Errorf("delete blog: %w", err)
	}

	s.cache.RemoveLocal(id)
	return nil
}
