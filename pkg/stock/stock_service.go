package stock

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/entities"
	"Stockify-Backend/pkg/audit"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	StockService interface {
		CreateStock(ctx context.Context, req domain.CreateStockRequest, userID string) (domain.StockResponse, error)
		UpdateStock(ctx context.Context, id string, req domain.UpdateStockRequest, userID string) error
		DeleteStock(ctx context.Context, id string, userID string) error
		GetStocks(ctx context.Context) ([]domain.StockResponse, error)
		GetStockByID(ctx context.Context, id string) (domain.StockResponse, error)
	}

	stockService struct {
		stockRepository StockRepository
		auditService    audit.AuditService
	}
)

func NewStockService(stockRepository StockRepository, auditService audit.AuditService) StockService {
	return &stockService{
		stockRepository: stockRepository,
		auditService:    auditService,
	}
}

func validStatus(status string) bool {
	switch status {
	case entities.StockStatusAvailable, entities.StockStatusInUse,
		entities.StockStatusDamaged, entities.StockStatusLost:
		return true
	}
	return false
}

func (s *stockService) CreateStock(ctx context.Context, req domain.CreateStockRequest, userID string) (domain.StockResponse, error) {
	if req.Quantity < 0 {
		return domain.StockResponse{}, domain.ErrInvalidQuantity
	}

	status := req.Status
	if status == "" {
		status = entities.StockStatusAvailable
	}
	if !validStatus(status) {
		return domain.StockResponse{}, domain.ErrInvalidStatus
	}

	stock := &entities.Stock{
		ID:          uuid.New(),
		Quantity:    req.Quantity,
		Status:      status,
		Notes:       req.Notes,
		LastUpdated: time.Now(),
	}

	// The allocation check and the insert share one transaction so two
	// concurrent creates for the same item cannot both pass the check.
	err := s.stockRepository.Transaction(ctx, func(txRepo StockRepository) error {
		item, err := txRepo.GetItemForUpdate(ctx, req.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}
		stock.ItemID = item.ID

		location, err := txRepo.GetLocationByID(ctx, req.LocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrLocationNotFound
			}
			return err
		}
		stock.LocationID = location.ID

		allocated, err := txRepo.SumStockQuantity(ctx, req.ItemID, "")
		if err != nil {
			return err
		}
		remaining := item.Quantity - allocated
		if remaining < 0 {
			return domain.ErrStockInconsistent
		}
		if req.Quantity > remaining {
			return &domain.QuantityExceededError{Requested: req.Quantity, Remaining: remaining}
		}

		return txRepo.CreateStock(ctx, stock)
	})
	if err != nil {
		return domain.StockResponse{}, err
	}

	s.auditService.Record(ctx, "stock", stock.ID.String(), entities.AuditActionCreate, userID,
		fmt.Sprintf("item %s: %d units", stock.ItemID, stock.Quantity))

	return toStockResponse(stock), nil
}

func (s *stockService) UpdateStock(ctx context.Context, id string, req domain.UpdateStockRequest, userID string) error {
	if req.Status != "" && !validStatus(req.Status) {
		return domain.ErrInvalidStatus
	}

	err := s.stockRepository.Transaction(ctx, func(txRepo StockRepository) error {
		stock, err := txRepo.GetStockByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrStockNotFound
			}
			return err
		}

		item, err := txRepo.GetItemForUpdate(ctx, stock.ItemID.String())
		if err != nil {
			return err
		}

		if req.LocationID != "" {
			location, err := txRepo.GetLocationByID(ctx, req.LocationID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrLocationNotFound
				}
				return err
			}
			stock.LocationID = location.ID
			stock.Location = nil
		}
		if req.Status != "" {
			stock.Status = req.Status
		}
		if req.Notes != nil {
			stock.Notes = *req.Notes
		}
		if req.Quantity != nil {
			if *req.Quantity < 0 {
				return domain.ErrInvalidQuantity
			}
			// All other records for the item plus the new quantity must
			// still fit under the item's declared total.
			allocated, err := txRepo.SumStockQuantity(ctx, stock.ItemID.String(), id)
			if err != nil {
				return err
			}
			remaining := item.Quantity - allocated
			if remaining < 0 {
				return domain.ErrStockInconsistent
			}
			if *req.Quantity > remaining {
				return &domain.QuantityExceededError{Requested: *req.Quantity, Remaining: remaining}
			}
			stock.Quantity = *req.Quantity
		}

		stock.LastUpdated = time.Now()
		return txRepo.UpdateStock(ctx, stock)
	})
	if err != nil {
		return err
	}

	s.auditService.Record(ctx, "stock", id, entities.AuditActionUpdate, userID, "")
	return nil
}

func (s *stockService) DeleteStock(ctx context.Context, id string, userID string) error {
	stock, err := s.stockRepository.GetStockByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrStockNotFound
		}
		return err
	}

	if err := s.stockRepository.DeleteStock(ctx, id); err != nil {
		return err
	}

	s.auditService.Record(ctx, "stock", id, entities.AuditActionDelete, userID,
		fmt.Sprintf("item %s: freed %d units", stock.ItemID, stock.Quantity))
	return nil
}

func (s *stockService) GetStocks(ctx context.Context) ([]domain.StockResponse, error) {
	stocks, err := s.stockRepository.GetStocks(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.StockResponse
	for _, stock := range stocks {
		response = append(response, toStockResponse(stock))
	}
	return response, nil
}

func (s *stockService) GetStockByID(ctx context.Context, id string) (domain.StockResponse, error) {
	stock, err := s.stockRepository.GetStockByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StockResponse{}, domain.ErrStockNotFound
		}
		return domain.StockResponse{}, err
	}
	return toStockResponse(stock), nil
}

func toStockResponse(stock *entities.Stock) domain.StockResponse {
	response := domain.StockResponse{
		ID:          stock.ID.String(),
		ItemID:      stock.ItemID.String(),
		LocationID:  stock.LocationID.String(),
		Quantity:    stock.Quantity,
		Status:      stock.Status,
		Notes:       stock.Notes,
		LastUpdated: stock.LastUpdated,
	}
	if stock.Location != nil {
		response.Location = &domain.LocationResponse{
			ID:          stock.Location.ID.String(),
			Name:        stock.Location.Name,
			Description: stock.Location.Description,
			ImageURL:    stock.Location.ImageURL,
			CreatedAt:   stock.Location.CreatedAt,
			UpdatedAt:   stock.Location.UpdatedAt,
		}
	}
	return response
}
