package stock

import (
	"Stockify-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	StockRepository interface {
		// Transaction runs fn against a repository bound to one database
		// transaction; returning an error rolls everything back.
		Transaction(ctx context.Context, fn func(txRepo StockRepository) error) error
		GetItemForUpdate(ctx context.Context, itemID string) (*entities.Item, error)
		GetLocationByID(ctx context.Context, locationID string) (*entities.Location, error)
		SumStockQuantity(ctx context.Context, itemID string, excludeStockID string) (int, error)
		CreateStock(ctx context.Context, stock *entities.Stock) error
		GetStockByID(ctx context.Context, id string) (*entities.Stock, error)
		GetStocks(ctx context.Context) ([]*entities.Stock, error)
		UpdateStock(ctx context.Context, stock *entities.Stock) error
		DeleteStock(ctx context.Context, id string) error
	}

	stockRepository struct {
		db *gorm.DB
	}
)

func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) Transaction(ctx context.Context, fn func(txRepo StockRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&stockRepository{db: tx})
	})
}

// GetItemForUpdate reads the item row with a row lock so concurrent
// allocation checks for the same item serialize at the database.
// sqlite has no row locks; its single-writer model covers the tests.
func (r *stockRepository) GetItemForUpdate(ctx context.Context, itemID string) (*entities.Item, error) {
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var item entities.Item
	if err := query.Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *stockRepository) GetLocationByID(ctx context.Context, locationID string) (*entities.Location, error) {
	var location entities.Location
	if err := r.db.WithContext(ctx).Where("id = ?", locationID).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *stockRepository) SumStockQuantity(ctx context.Context, itemID string, excludeStockID string) (int, error) {
	var total int
	query := r.db.WithContext(ctx).Model(&entities.Stock{}).
		Where("item_id = ?", itemID)
	if excludeStockID != "" {
		query = query.Where("id <> ?", excludeStockID)
	}
	err := query.Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error
	return total, err
}

func (r *stockRepository) CreateStock(ctx context.Context, stock *entities.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

func (r *stockRepository) GetStockByID(ctx context.Context, id string) (*entities.Stock, error) {
	var stock entities.Stock
	if err := r.db.WithContext(ctx).
		Preload("Location").
		Where("id = ?", id).
		First(&stock).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *stockRepository) GetStocks(ctx context.Context) ([]*entities.Stock, error) {
	var stocks []*entities.Stock
	if err := r.db.WithContext(ctx).
		Preload("Location").
		Order("last_updated desc").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

func (r *stockRepository) UpdateStock(ctx context.Context, stock *entities.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

func (r *stockRepository) DeleteStock(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Stock{}).Error
}
