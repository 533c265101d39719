package item

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/entities"
	"Stockify-Backend/pkg/audit"
	"Stockify-Backend/pkg/category"
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubStorage satisfies the object storage interface without talking to S3.
type stubStorage struct {
	deleted []string
}

func (s *stubStorage) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	return dir + "/" + fileName, nil
}

func (s *stubStorage) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (s *stubStorage) DeleteFile(objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *stubStorage) DeleteFiles(objectKeys []string) error {
	s.deleted = append(s.deleted, objectKeys...)
	return nil
}

func (s *stubStorage) PresignPutObject(fileType string) (string, string, error) {
	return "https://storage.test/presigned", "uploads/" + uuid.NewString(), nil
}

func (s *stubStorage) GetPublicLinkKey(objectKey string) string {
	return "https://storage.test/" + objectKey
}

func (s *stubStorage) GetObjectKeyFromLink(link string) string {
	return link[len("https://storage.test/"):]
}

func newItemService(t *testing.T) (ItemService, *gorm.DB, string) {
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

	service := NewItemService(
		NewItemRepository(db),
		category.NewCategoryRepository(db),
		audit.NewAuditService(audit.NewAuditRepository(db)),
		&stubStorage{},
	)
	return service, db, user.ID.String()
}

func TestCreateItem(t *testing.T) {
	service, db, userID := newItemService(t)
	ctx := context.Background()

	cat := &entities.Category{ID: uuid.New(), Name: "Electronics"}
	require.NoError(t, db.Create(cat).Error)

	res, err := service.CreateItem(ctx, domain.CreateItemRequest{
		Name:       "Projector",
		Quantity:   5,
		CategoryID: cat.ID.String(),
		Price:      "129.9",
		Supplier:   "Acme AV",
	}, userID)
	require.NoError(t, err)
	require.Equal(t, "Projector", res.Name)
	require.Equal(t, 5, res.Quantity)
	require.Equal(t, cat.ID.String(), res.CategoryID)
	require.Equal(t, "129.90", res.Price)

	_, err = service.CreateItem(ctx, domain.CreateItemRequest{
		Name:       "Unfiled",
		CategoryID: uuid.NewString(),
	}, userID)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = service.CreateItem(ctx, domain.CreateItemRequest{
		Name:       "Unfiled",
		CategoryID: "not-a-uuid",
	}, userID)
	require.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.CreateItem(ctx, domain.CreateItemRequest{
		Name:  "Mispriced",
		Price: "twelve",
	}, userID)
	require.Error(t, err)
}

func TestQuantityLeft(t *testing.T) {
	service, db, userID := newItemService(t)
	ctx := context.Background()

	created, err := service.CreateItem(ctx, domain.CreateItemRequest{
		Name:     "Projector",
		Quantity: 10,
	}, userID)
	require.NoError(t, err)

	location := &entities.Location{ID: uuid.New(), Name: "Closet A"}
	require.NoError(t, db.Create(location).Error)

	itemID := uuid.MustParse(created.ID)
	for _, quantity := range []int{4, 3} {
		require.NoError(t, db.Create(&entities.Stock{
			ID:          uuid.New(),
			ItemID:      itemID,
			LocationID:  location.ID,
			Quantity:    quantity,
			Status:      entities.StockStatusAvailable,
			LastUpdated: time.Now(),
		}).Error)
	}

	res, err := service.QuantityLeft(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, res.ItemID)
	require.Equal(t, 3, res.QuantityLeft)

	// Reading is idempotent.
	again, err := service.QuantityLeft(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, res, again)
}

func TestQuantityLeft_NoStocks(t *testing.T) {
	service, _, userID := newItemService(t)
	ctx := context.Background()

	created, err := service.CreateItem(ctx, domain.CreateItemRequest{
		Name:     "Whiteboard",
		Quantity: 7,
	}, userID)
	require.NoError(t, err)

	res, err := service.QuantityLeft(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 7, res.QuantityLeft)
}

func TestQuantityLeft_UnknownItem(t *testing.T) {
	service, _, _ := newItemService(t)

	_, err := service.QuantityLeft(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestQuantityLeft_Oversubscribed(t *testing.T) {
	service, db, userID := newItemService(t)
	ctx := context.Background()

	created, err := service.CreateItem(ctx, domain.CreateItemRequest{
		Name:     "Projector",
		Quantity: 2,
	}, userID)
	require.NoError(t, err)

	location := &entities.Location{ID: uuid.New(), Name: "Closet A"}
	require.NoError(t, db.Create(location).Error)
	require.NoError(t, db.Create(&entities.Stock{
		ID:          uuid.New(),
		ItemID:      uuid.MustParse(created.ID),
		LocationID:  location.ID,
		Quantity:    5,
		Status:      entities.StockStatusAvailable,
		LastUpdated: time.Now(),
	}).Error)

	_, err = service.QuantityLeft(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrStockInconsistent)
}

func TestUpdateItem(t *testing.T) {
	service, _, userID := newItemService(t)
	ctx := context.Background()

	created, err := service.CreateItem(ctx, domain.CreateItemRequest{
		Name:     "Projector",
		Quantity: 5,
	}, userID)
	require.NoError(t, err)

	quantity := 8
	require.NoError(t, service.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{
		Name:     "Projector HD",
		Quantity: &quantity,
		Price:    "250",
	}, userID))

	updated, err := service.GetItemByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Projector HD", updated.Name)
	require.Equal(t, 8, updated.Quantity)
	require.Equal(t, "250.00", updated.Price)

	negative := -1
	err = service.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{Quantity: &negative}, userID)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	err = service.UpdateItem(ctx, uuid.NewString(), domain.UpdateItemRequest{}, userID)
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDeleteItem(t *testing.T) {
	service, db, userID := newItemService(t)
	ctx := context.Background()

	created, err := service.CreateItem(ctx, domain.CreateItemRequest{
		Name:     "Projector",
		Quantity: 5,
	}, userID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteItem(ctx, created.ID, userID))

	var count int64
	require.NoError(t, db.Model(&entities.Item{}).Count(&count).Error)
	require.Zero(t, count)

	err = service.DeleteItem(ctx, created.ID, userID)
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestGetItemByID_IncludesRelations(t *testing.T) {
	service, db, userID := newItemService(t)
	ctx := context.Background()

	cat := &entities.Category{ID: uuid.New(), Name: "Electronics"}
	require.NoError(t, db.Create(cat).Error)

	created, err := service.CreateItem(ctx, domain.CreateItemRequest{
		Name:       "Projector",
		Quantity:   5,
		CategoryID: cat.ID.String(),
	}, userID)
	require.NoError(t, err)

	location := &entities.Location{ID: uuid.New(), Name: "Closet A"}
	require.NoError(t, db.Create(location).Error)
	require.NoError(t, db.Create(&entities.Stock{
		ID:          uuid.New(),
		ItemID:      uuid.MustParse(created.ID),
		LocationID:  location.ID,
		Quantity:    3,
		Status:      entities.StockStatusAvailable,
		LastUpdated: time.Now(),
	}).Error)

	detail, err := service.GetItemByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Category)
	require.Equal(t, "Electronics", detail.Category.Name)
	require.Len(t, detail.Stock, 1)
	require.Equal(t, 3, detail.Stock[0].Quantity)
	require.NotNil(t, detail.Stock[0].Location)
	require.Equal(t, "Closet A", detail.Stock[0].Location.Name)
}
