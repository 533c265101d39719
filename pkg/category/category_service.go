package category

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/entities"
	"Stockify-Backend/pkg/audit"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest, userID string) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest, userID string) error
		DeleteCategory(ctx context.Context, id string, userID string) error
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetCategoryByID(ctx context.Context, id string) (domain.CategoryResponse, error)
		GetCategoryOptions(ctx context.Context) ([]domain.SelectOption, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
		auditService       audit.AuditService
	}
)

func NewCategoryService(categoryRepository CategoryRepository, auditService audit.AuditService) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		auditService:       auditService,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest, userID string) (domain.CategoryResponse, error) {
	if _, err := s.categoryRepository.GetCategoryByName(ctx, req.Name); err == nil {
		return domain.CategoryResponse{}, domain.ErrCategoryAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CategoryResponse{}, err
	}

	category := &entities.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	s.auditService.Record(ctx, "category", category.ID.String(), entities.AuditActionCreate, userID, category.Name)

	return toCategoryResponse(category, 0), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest, userID string) error {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if req.Name != "" && req.Name != category.Name {
		if _, err := s.categoryRepository.GetCategoryByName(ctx, req.Name); err == nil {
			return domain.ErrCategoryAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return err
	}

	s.auditService.Record(ctx, "category", category.ID.String(), entities.AuditActionUpdate, userID, category.Name)
	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string, userID string) error {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.auditService.Record(ctx, "category", id, entities.AuditActionDelete, userID, category.Name)
	return nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.CategoryResponse
	for _, entry := range categories {
		category := entry.Category
		response = append(response, toCategoryResponse(&category, entry.ItemCount))
	}
	return response, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return toCategoryResponse(category, 0), nil
}

func (s *categoryService) GetCategoryOptions(ctx context.Context) ([]domain.SelectOption, error) {
	categories, err := s.categoryRepository.GetCategoryOptions(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]domain.SelectOption, 0, len(categories))
	for _, category := range categories {
		options = append(options, domain.SelectOption{
			Label: category.Name,
			Value: category.ID.String(),
		})
	}
	return options, nil
}

func toCategoryResponse(category *entities.Category, itemCount int64) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		ItemCount:   itemCount,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
