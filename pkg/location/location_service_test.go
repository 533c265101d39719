package location

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/entities"
	"Stockify-Backend/pkg/audit"
	"context"
	"mime/multipart"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

func newLocationService(t *testing.T) (LocationService, *gorm.DB, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Location{},
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

	service := NewLocationService(
		NewLocationRepository(db),
		audit.NewAuditService(audit.NewAuditRepository(db)),
		&stubStorage{},
	)
	return service, db, user.ID.String()
}

func TestCreateLocation(t *testing.T) {
	service, _, userID := newLocationService(t)
	ctx := context.Background()

	res, err := service.CreateLocation(ctx, domain.CreateLocationRequest{
		Name:        "Closet A",
		Description: "Third floor, next to the lab",
	}, userID)
	require.NoError(t, err)
	require.Equal(t, "Closet A", res.Name)
	require.NotEmpty(t, res.ID)
}

func TestGetLocations_NameFilter(t *testing.T) {
	service, _, userID := newLocationService(t)
	ctx := context.Background()

	for _, name := range []string{"Closet A", "Closet B", "Server Room"} {
		_, err := service.CreateLocation(ctx, domain.CreateLocationRequest{Name: name}, userID)
		require.NoError(t, err)
	}

	all, err := service.GetLocations(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	closets, err := service.GetLocations(ctx, "closet")
	require.NoError(t, err)
	require.Len(t, closets, 2)

	rooms, err := service.GetLocations(ctx, "ROOM")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.Equal(t, "Server Room", rooms[0].Name)

	none, err := service.GetLocations(ctx, "attic")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestUpdateLocation(t *testing.T) {
	service, _, userID := newLocationService(t)
	ctx := context.Background()

	created, err := service.CreateLocation(ctx, domain.CreateLocationRequest{Name: "Closet A"}, userID)
	require.NoError(t, err)

	require.NoError(t, service.UpdateLocation(ctx, created.ID, domain.UpdateLocationRequest{
		Name:        "Closet A1",
		Description: "Relabeled after the move",
	}, userID))

	updated, err := service.GetLocationByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Closet A1", updated.Name)
	require.Equal(t, "Relabeled after the move", updated.Description)

	err = service.UpdateLocation(ctx, uuid.NewString(), domain.UpdateLocationRequest{}, userID)
	require.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestGetLocationOptions(t *testing.T) {
	service, _, userID := newLocationService(t)
	ctx := context.Background()

	created, err := service.CreateLocation(ctx, domain.CreateLocationRequest{Name: "Closet A"}, userID)
	require.NoError(t, err)

	options, err := service.GetLocationOptions(ctx)
	require.NoError(t, err)
	require.Len(t, options, 1)
	require.Equal(t, "Closet A", options[0].Label)
	require.Equal(t, created.ID, options[0].Value)
}

func TestDeleteLocation(t *testing.T) {
	service, db, userID := newLocationService(t)
	ctx := context.Background()

	created, err := service.CreateLocation(ctx, domain.CreateLocationRequest{Name: "Closet A"}, userID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteLocation(ctx, created.ID, userID))

	var count int64
	require.NoError(t, db.Model(&entities.Location{}).Count(&count).Error)
	require.Zero(t, count)

	err = service.DeleteLocation(ctx, created.ID, userID)
	require.ErrorIs(t, err, domain.ErrLocationNotFound)
}
