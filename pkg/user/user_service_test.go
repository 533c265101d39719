package user

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/entities"
	"Stockify-Backend/pkg/audit"
	"Stockify-Backend/pkg/jwt"
	"Stockify-Backend/pkg/session"
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (UserService, *gorm.DB, jwt.JWTService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Session{},
		&entities.AuditLog{},
	))

	jwtService := jwt.NewJWTServiceWithSecrets("test-secret", "test-refresh-secret")
	service := NewUserService(
		NewUserRepository(db),
		session.NewSessionRepository(db),
		audit.NewAuditRepository(db),
		jwtService,
	)
	return service, db, jwtService
}

func register(t *testing.T, service UserService) domain.UserResponse {
	t.Helper()
	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "keeper",
		Email:    "keeper@example.com",
		Name:     "Keeper",
		Password: "correct horse",
	})
	require.NoError(t, err)
	return res
}

func TestRegister(t *testing.T) {
	service, db, _ := newUserService(t)

	res := register(t, service)
	require.Equal(t, "keeper", res.Username)
	require.Equal(t, domain.RoleUser, res.Role)

	var stored entities.User
	require.NoError(t, db.First(&stored, "username = ?", "keeper").Error)
	require.NotEqual(t, "correct horse", stored.Password)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "keeper",
		Email:    "other@example.com",
		Password: "whatever123",
	})
	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "other",
		Email:    "keeper@example.com",
		Password: "whatever123",
	})
	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	service, db, jwtService := newUserService(t)
	registered := register(t, service)
	ctx := context.Background()

	for _, identifier := range []string{"keeper", "keeper@example.com"} {
		res, err := service.Login(ctx, domain.LoginRequest{
			Identifier: identifier,
			Password:   "correct horse",
		})
		require.NoError(t, err)
		require.NotEmpty(t, res.AccessToken)
		require.NotEmpty(t, res.RefreshToken)
		require.Equal(t, registered.ID, res.User.ID)

		claims, err := jwtService.ValidateAccessToken(res.AccessToken)
		require.NoError(t, err)
		require.Equal(t, registered.ID, claims.UserID)
		require.Equal(t, domain.RoleUser, claims.Role)
		require.Equal(t, "keeper", claims.Username)

		var stored entities.Session
		require.NoError(t, db.First(&stored, "token = ?", res.RefreshToken).Error)
		require.Equal(t, registered.ID, stored.UserID.String())
		require.True(t, stored.ExpiresAt.After(time.Now()))
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	service, db, _ := newUserService(t)
	register(t, service)
	ctx := context.Background()

	_, err := service.Login(ctx, domain.LoginRequest{
		Identifier: "keeper",
		Password:   "wrong horse",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// An unknown identifier reads the same as a wrong password.
	_, unknownErr := service.Login(ctx, domain.LoginRequest{
		Identifier: "nobody",
		Password:   "wrong horse",
	})
	require.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
	require.Equal(t, err.Error(), unknownErr.Error())

	var sessions int64
	require.NoError(t, db.Model(&entities.Session{}).Count(&sessions).Error)
	require.Zero(t, sessions)
}

func TestRefresh(t *testing.T) {
	service, _, _ := newUserService(t)
	register(t, service)
	ctx := context.Background()

	login, err := service.Login(ctx, domain.LoginRequest{
		Identifier: "keeper",
		Password:   "correct horse",
	})
	require.NoError(t, err)

	res, err := service.Refresh(ctx, domain.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.True(t, res.ExpiresAt.After(time.Now()))

	_, err = service.Refresh(ctx, domain.RefreshRequest{RefreshToken: "garbage"})
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRefresh_AfterLogout(t *testing.T) {
	service, _, _ := newUserService(t)
	register(t, service)
	ctx := context.Background()

	login, err := service.Login(ctx, domain.LoginRequest{
		Identifier: "keeper",
		Password:   "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, domain.LogoutRequest{RefreshToken: login.RefreshToken}))

	// The token still verifies but its session row is gone.
	_, err = service.Refresh(ctx, domain.RefreshRequest{RefreshToken: login.RefreshToken})
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRefresh_ExpiredSession(t *testing.T) {
	service, db, _ := newUserService(t)
	register(t, service)
	ctx := context.Background()

	login, err := service.Login(ctx, domain.LoginRequest{
		Identifier: "keeper",
		Password:   "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&entities.Session{}).
		Where("token = ?", login.RefreshToken).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	_, err = service.Refresh(ctx, domain.RefreshRequest{RefreshToken: login.RefreshToken})
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	// The dead session row is cleaned up on the way out.
	var count int64
	require.NoError(t, db.Model(&entities.Session{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateUser(t *testing.T) {
	service, _, _ := newUserService(t)
	registered := register(t, service)
	ctx := context.Background()

	require.NoError(t, service.UpdateUser(ctx, registered.ID, domain.UpdateUserRequest{
		Name:     "New Name",
		Password: "new password",
	}))

	_, err := service.Login(ctx, domain.LoginRequest{
		Identifier: "keeper",
		Password:   "correct horse",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	res, err := service.Login(ctx, domain.LoginRequest{
		Identifier: "keeper",
		Password:   "new password",
	})
	require.NoError(t, err)
	require.Equal(t, "New Name", res.User.Name)
}

func TestDeleteUser(t *testing.T) {
	service, db, _ := newUserService(t)
	registered := register(t, service)
	ctx := context.Background()

	_, err := service.Login(ctx, domain.LoginRequest{
		Identifier: "keeper",
		Password:   "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(ctx, registered.ID, uuid.NewString()))

	var users, sessions int64
	require.NoError(t, db.Model(&entities.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&entities.Session{}).Count(&sessions).Error)
	require.Zero(t, users)
	require.Zero(t, sessions)

	err = service.DeleteUser(ctx, registered.ID, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser_ReferencedByAuditLog(t *testing.T) {
	service, db, _ := newUserService(t)
	registered := register(t, service)
	ctx := context.Background()

	require.NoError(t, db.Create(&entities.AuditLog{
		ID:        uuid.New(),
		TableName: "item",
		RecordID:  uuid.NewString(),
		Action:    entities.AuditActionCreate,
		UserID:    uuid.MustParse(registered.ID),
		Timestamp: time.Now(),
	}).Error)

	err := service.DeleteUser(ctx, registered.ID, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrUserReferenced)

	var users int64
	require.NoError(t, db.Model(&entities.User{}).Count(&users).Error)
	require.EqualValues(t, 1, users)
}

func TestResetPassword(t *testing.T) {
	service, db, jwtService := newUserService(t)
	registered := register(t, service)
	ctx := context.Background()

	login, err := service.Login(ctx, domain.LoginRequest{
		Identifier: "keeper",
		Password:   "correct horse",
	})
	require.NoError(t, err)

	token, err := jwtService.GenerateResetToken(registered.ID)
	require.NoError(t, err)

	require.NoError(t, service.ResetPassword(ctx, domain.ResetPasswordRequest{
		Token:    token,
		Password: "rebuilt stable",
	}))

	// Existing sessions are invalidated by the reset.
	var sessions int64
	require.NoError(t, db.Model(&entities.Session{}).Count(&sessions).Error)
	require.Zero(t, sessions)
	_, err = service.Refresh(ctx, domain.RefreshRequest{RefreshToken: login.RefreshToken})
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = service.Login(ctx, domain.LoginRequest{
		Identifier: "keeper",
		Password:   "rebuilt stable",
	})
	require.NoError(t, err)

	err = service.ResetPassword(ctx, domain.ResetPasswordRequest{
		Token:    "garbage",
		Password: "whatever123",
	})
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}
