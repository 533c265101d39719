package stock

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/entities"
	"Stockify-Backend/pkg/audit"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testFixture struct {
	db       *gorm.DB
	service  StockService
	userID   string
	item     *entities.Item
	location *entities.Location
}

func newTestFixture(t *testing.T, itemQuantity int) *testFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Location{},
		&entities.Item{},
		&entities.Stock{},
		&entities.AuditLog{},
	))

	user := &entities.User{
		ID:       uuid.New(),
		Username: "keeper",
		Email:    "keeper@example.com",
		Password: "irrelevant",
		Role:     domain.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)

	item := &entities.Item{
		ID:       uuid.New(),
		Name:     "Projector",
		Quantity: itemQuantity,
	}
	require.NoError(t, db.Create(item).Error)

	location := &entities.Location{
		ID:   uuid.New(),
		Name: "Closet A",
	}
	require.NoError(t, db.Create(location).Error)

	auditService := audit.NewAuditService(audit.NewAuditRepository(db))
	return &testFixture{
		db:       db,
		service:  NewStockService(NewStockRepository(db), auditService),
		userID:   user.ID.String(),
		item:     item,
		location: location,
	}
}

func (f *testFixture) stockCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&entities.Stock{}).Count(&count).Error)
	return count
}

func TestCreateStock_AllocationBounded(t *testing.T) {
	f := newTestFixture(t, 5)
	ctx := context.Background()

	first, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   3,
	}, f.userID)
	require.NoError(t, err)
	require.Equal(t, 3, first.Quantity)
	require.Equal(t, entities.StockStatusAvailable, first.Status)

	// Only 2 units remain allocatable, asking for 3 must fail whole.
	_, err = f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   3,
	}, f.userID)
	var exceeded *domain.QuantityExceededError
	require.ErrorAs(t, err, &exceeded)
	require.Equal(t, 3, exceeded.Requested)
	require.Equal(t, 2, exceeded.Remaining)
	require.EqualValues(t, 1, f.stockCount(t))

	second, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   2,
	}, f.userID)
	require.NoError(t, err)
	require.Equal(t, 2, second.Quantity)

	// Fully allocated now, even a single unit is over.
	_, err = f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   1,
	}, f.userID)
	require.ErrorAs(t, err, &exceeded)
	require.Equal(t, 0, exceeded.Remaining)

	// Deleting the first record frees its units again.
	require.NoError(t, f.service.DeleteStock(ctx, first.ID, f.userID))
	third, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   3,
	}, f.userID)
	require.NoError(t, err)
	require.Equal(t, 3, third.Quantity)
}

func TestCreateStock_ZeroQuantityAllowed(t *testing.T) {
	f := newTestFixture(t, 0)
	ctx := context.Background()

	res, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   0,
		Status:     entities.StockStatusDamaged,
	}, f.userID)
	require.NoError(t, err)
	require.Equal(t, 0, res.Quantity)
	require.Equal(t, entities.StockStatusDamaged, res.Status)
}

func TestCreateStock_Validation(t *testing.T) {
	f := newTestFixture(t, 5)
	ctx := context.Background()

	_, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   -1,
	}, f.userID)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   1,
		Status:     "Broken",
	}, f.userID)
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     uuid.NewString(),
		LocationID: f.location.ID.String(),
		Quantity:   1,
	}, f.userID)
	require.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: uuid.NewString(),
		Quantity:   1,
	}, f.userID)
	require.ErrorIs(t, err, domain.ErrLocationNotFound)

	require.EqualValues(t, 0, f.stockCount(t))
}

func TestCreateStock_InconsistentData(t *testing.T) {
	f := newTestFixture(t, 5)
	ctx := context.Background()

	// A row written behind the service's back oversubscribes the item.
	require.NoError(t, f.db.Create(&entities.Stock{
		ID:          uuid.New(),
		ItemID:      f.item.ID,
		LocationID:  f.location.ID,
		Quantity:    9,
		Status:      entities.StockStatusAvailable,
		LastUpdated: time.Now(),
	}).Error)

	_, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   0,
	}, f.userID)
	require.ErrorIs(t, err, domain.ErrStockInconsistent)
}

func TestUpdateStock_RevalidatesQuantity(t *testing.T) {
	f := newTestFixture(t, 5)
	ctx := context.Background()

	created, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   3,
	}, f.userID)
	require.NoError(t, err)

	other, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   2,
	}, f.userID)
	require.NoError(t, err)

	// The record's own quantity does not count against itself: 3 -> 3 is
	// allowed, 3 -> 4 collides with the other record's 2 units.
	same := 3
	require.NoError(t, f.service.UpdateStock(ctx, created.ID, domain.UpdateStockRequest{Quantity: &same}, f.userID))

	over := 4
	err = f.service.UpdateStock(ctx, created.ID, domain.UpdateStockRequest{Quantity: &over}, f.userID)
	var exceeded *domain.QuantityExceededError
	require.ErrorAs(t, err, &exceeded)
	require.Equal(t, 4, exceeded.Requested)
	require.Equal(t, 3, exceeded.Remaining)

	// Shrinking the other record makes room.
	shrunk := 1
	require.NoError(t, f.service.UpdateStock(ctx, other.ID, domain.UpdateStockRequest{Quantity: &shrunk}, f.userID))
	require.NoError(t, f.service.UpdateStock(ctx, created.ID, domain.UpdateStockRequest{Quantity: &over}, f.userID))

	updated, err := f.service.GetStockByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 4, updated.Quantity)
}

func TestUpdateStock_FieldsAndRelocation(t *testing.T) {
	f := newTestFixture(t, 5)
	ctx := context.Background()

	created, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   2,
		Notes:      "front shelf",
	}, f.userID)
	require.NoError(t, err)

	other := &entities.Location{ID: uuid.New(), Name: "Closet B"}
	require.NoError(t, f.db.Create(other).Error)

	notes := ""
	require.NoError(t, f.service.UpdateStock(ctx, created.ID, domain.UpdateStockRequest{
		LocationID: other.ID.String(),
		Status:     entities.StockStatusInUse,
		Notes:      &notes,
	}, f.userID))

	updated, err := f.service.GetStockByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, other.ID.String(), updated.LocationID)
	require.Equal(t, entities.StockStatusInUse, updated.Status)
	require.Empty(t, updated.Notes)
	require.Equal(t, 2, updated.Quantity)

	err = f.service.UpdateStock(ctx, created.ID, domain.UpdateStockRequest{
		LocationID: uuid.NewString(),
	}, f.userID)
	require.ErrorIs(t, err, domain.ErrLocationNotFound)

	err = f.service.UpdateStock(ctx, uuid.NewString(), domain.UpdateStockRequest{}, f.userID)
	require.ErrorIs(t, err, domain.ErrStockNotFound)
}

func TestDeleteStock_NotFound(t *testing.T) {
	f := newTestFixture(t, 5)

	err := f.service.DeleteStock(context.Background(), uuid.NewString(), f.userID)
	require.ErrorIs(t, err, domain.ErrStockNotFound)
}

func TestGetStocks_IncludesLocation(t *testing.T) {
	f := newTestFixture(t, 5)
	ctx := context.Background()

	created, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   2,
	}, f.userID)
	require.NoError(t, err)

	stocks, err := f.service.GetStocks(ctx)
	require.NoError(t, err)
	require.Len(t, stocks, 1)
	require.Equal(t, created.ID, stocks[0].ID)
	require.NotNil(t, stocks[0].Location)
	require.Equal(t, "Closet A", stocks[0].Location.Name)
}

func TestStockMutations_AreAudited(t *testing.T) {
	f := newTestFixture(t, 5)
	ctx := context.Background()

	created, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   2,
	}, f.userID)
	require.NoError(t, err)
	require.NoError(t, f.service.DeleteStock(ctx, created.ID, f.userID))

	var logs []*entities.AuditLog
	require.NoError(t, f.db.Find(&logs).Error)
	require.Len(t, logs, 2)
	actions := []string{logs[0].Action, logs[1].Action}
	require.ElementsMatch(t, []string{entities.AuditActionCreate, entities.AuditActionDelete}, actions)
	for _, entry := range logs {
		require.Equal(t, "stock", entry.TableName)
		require.Equal(t, created.ID, entry.RecordID)
		require.Equal(t, f.userID, entry.UserID.String())
	}
}

func TestCreateStock_RejectionLeavesNoTrace(t *testing.T) {
	f := newTestFixture(t, 1)
	ctx := context.Background()

	_, err := f.service.CreateStock(ctx, domain.CreateStockRequest{
		ItemID:     f.item.ID.String(),
		LocationID: f.location.ID.String(),
		Quantity:   2,
	}, f.userID)
	var exceeded *domain.QuantityExceededError
	require.True(t, errors.As(err, &exceeded))

	require.EqualValues(t, 0, f.stockCount(t))
	var auditCount int64
	require.NoError(t, f.db.Model(&entities.AuditLog{}).Count(&auditCount).Error)
	require.Zero(t, auditCount)
}
