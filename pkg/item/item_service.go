package item

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/entities"
	"Stockify-Backend/internal/utils/storage"
	"Stockify-Backend/pkg/audit"
	"Stockify-Backend/pkg/category"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	ItemService interface {
		CreateItem(ctx context.Context, req domain.CreateItemRequest, userID string) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) error
		DeleteItem(ctx context.Context, id string, userID string) error
		GetItems(ctx context.Context) ([]domain.ItemResponse, error)
		GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error)
		QuantityLeft(ctx context.Context, id string) (domain.QuantityLeftResponse, error)
	}

	itemService struct {
		itemRepository     ItemRepository
		categoryRepository category.CategoryRepository
		auditService       audit.AuditService
		s3                 storage.AwsS3
	}
)

func NewItemService(
	itemRepository ItemRepository,
	categoryRepository category.CategoryRepository,
	auditService audit.AuditService,
	s3 storage.AwsS3,
) ItemService {
	return &itemService{
		itemRepository:     itemRepository,
		categoryRepository: categoryRepository,
		auditService:       auditService,
		s3:                 s3,
	}
}

func parsePrice(raw string) (decimal.NullDecimal, error) {
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: price, Valid: true}, nil
}

func (s *itemService) resolveCategory(ctx context.Context, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if _, err := s.categoryRepository.GetCategoryByID(ctx, raw); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &categoryID, nil
}

func (s *itemService) CreateItem(ctx context.Context, req domain.CreateItemRequest, userID string) (domain.ItemResponse, error) {
	if req.Quantity < 0 {
		return domain.ItemResponse{}, domain.ErrInvalidQuantity
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	item := &entities.Item{
		ID:            uuid.New(),
		Name:          req.Name,
		Quantity:      req.Quantity,
		CategoryID:    categoryID,
		Price:         price,
		Supplier:      req.Supplier,
		SupplierPhone: req.SupplierPhone,
	}

	if req.Image != nil {
		fileName := fmt.Sprintf("item-%s", item.ID.String())
		objectKey, err := s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
		if err != nil {
			return domain.ItemResponse{}, err
		}
		item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.itemRepository.CreateItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	s.auditService.Record(ctx, "item", item.ID.String(), entities.AuditActionCreate, userID, item.Name)

	return toItemResponse(item), nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.CategoryID != "" {
		categoryID, err := s.resolveCategory(ctx, req.CategoryID)
		if err != nil {
			return err
		}
		item.CategoryID = categoryID
	}
	if req.Price != "" {
		price, err := parsePrice(req.Price)
		if err != nil {
			return err
		}
		item.Price = price
	}
	if req.Supplier != "" {
		item.Supplier = req.Supplier
	}
	if req.SupplierPhone != "" {
		item.SupplierPhone = req.SupplierPhone
	}

	if req.Image != nil {
		if item.ImageURL != "" {
			existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
			if existingKey != "" {
				_ = s.s3.DeleteFile(existingKey)
			}
		}
		fileName := fmt.Sprintf("item-%s", item.ID.String())
		objectKey, err := s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
		if err != nil {
			return err
		}
		item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return err
	}

	s.auditService.Record(ctx, "item", item.ID.String(), entities.AuditActionUpdate, userID, item.Name)
	return nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string, userID string) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		return err
	}

	s.auditService.Record(ctx, "item", id, entities.AuditActionDelete, userID, item.Name)
	return nil
}

func (s *itemService) GetItems(ctx context.Context) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.ItemResponse
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response, nil
}

func (s *itemService) GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// QuantityLeft reports how many units of the item are not yet allocated to
// any location. A negative remainder means the stored data violates the
// allocation invariant and is surfaced instead of returned.
func (s *itemService) QuantityLeft(ctx context.Context, id string) (domain.QuantityLeftResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QuantityLeftResponse{}, domain.ErrItemNotFound
		}
		return domain.QuantityLeftResponse{}, err
	}

	allocated, err := s.itemRepository.SumStockQuantity(ctx, id)
	if err != nil {
		return domain.QuantityLeftResponse{}, err
	}

	left := item.Quantity - allocated
	if left < 0 {
		return domain.QuantityLeftResponse{}, domain.ErrStockInconsistent
	}

	return domain.QuantityLeftResponse{
		ItemID:       item.ID.String(),
		QuantityLeft: left,
	}, nil
}

func toItemResponse(item *entities.Item) domain.ItemResponse {
	response := domain.ItemResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		Quantity:      item.Quantity,
		Supplier:      item.Supplier,
		SupplierPhone: item.SupplierPhone,
		ImageURL:      item.ImageURL,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
	if item.CategoryID != nil {
		response.CategoryID = item.CategoryID.String()
	}
	if item.Price.Valid {
		response.Price = item.Price.Decimal.StringFixed(2)
	}
	if item.Category != nil {
		response.Category = &domain.CategoryResponse{
			ID:          item.Category.ID.String(),
			Name:        item.Category.Name,
			Description: item.Category.Description,
			CreatedAt:   item.Category.CreatedAt,
			UpdatedAt:   item.Category.UpdatedAt,
		}
	}
	for _, stock := range item.Stocks {
		stockResponse := domain.StockResponse{
			ID:          stock.ID.String(),
			ItemID:      stock.ItemID.String(),
			LocationID:  stock.LocationID.String(),
			Quantity:    stock.Quantity,
			Status:      stock.Status,
			Notes:       stock.Notes,
			LastUpdated: stock.LastUpdated,
		}
		if stock.Location != nil {
			stockResponse.Location = &domain.LocationResponse{
				ID:          stock.Location.ID.String(),
				Name:        stock.Location.Name,
				Description: stock.Location.Description,
				ImageURL:    stock.Location.ImageURL,
				CreatedAt:   stock.Location.CreatedAt,
				UpdatedAt:   stock.Location.UpdatedAt,
			}
		}
		response.Stock = append(response.Stock, stockResponse)
	}
	return response
}
