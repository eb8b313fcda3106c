package usecase

import (
	"context"

	"blogapi/src/core/domain"
	"blogapi/src/core/ports"
	"blogapi/src/core/result"
)

// CategoryService is a read-only lookup of the fixed category set.
type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) ListAll(ctx context.Context) (result.Result[[]domain.Category], error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return result.Result[[]domain.Category]{}, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return result.Ok(categories), nil
}
