package category

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	FindCategoryByDescription(ctx context.Context, description string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	c := &Category{
		Description: params.Description,
		Purpose:     params.Purpose,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) GetByDescription(ctx context.Context, description string) (*Category, error) {
	return s.repo.FindCategoryByDescription(ctx, description)
}

func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}
