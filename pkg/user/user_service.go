package user

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/entities"
	"Stockify-Backend/internal/utils"
	"Stockify-Backend/internal/utils/mailing"
	"Stockify-Backend/pkg/audit"
	"Stockify-Backend/pkg/jwt"
	"Stockify-Backend/pkg/session"
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Refresh(ctx context.Context, req domain.RefreshRequest) (domain.RefreshResponse, error)
		Logout(ctx context.Context, req domain.LogoutRequest) error
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string, actorID string) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		userRepository    UserRepository
		sessionRepository session.SessionRepository
		auditRepository   audit.AuditRepository
		jwtService        jwt.JWTService
	}
)

func NewUserService(
	userRepository UserRepository,
	sessionRepository session.SessionRepository,
	auditRepository audit.AuditRepository,
	jwtService jwt.JWTService,
) UserService {
	return &userService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		auditRepository:   auditRepository,
		jwtService:        jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	count, err := s.userRepository.CountByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if count > 0 {
		return domain.UserResponse{}, domain.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, domain.ErrHashPassword
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// Login resolves the identifier against username or email. Anything other
// than exactly one match is reported the same way as a wrong password so
// callers cannot probe which accounts exist.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	users, err := s.userRepository.GetUsersByIdentifier(ctx, req.Identifier)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if len(users) != 1 {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}
	user := users[0]

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	accessToken, accessExpiry, err := s.jwtService.GenerateAccessToken(user.ID.String(), user.Role, user.Username)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	refreshToken, refreshExpiry, err := s.jwtService.GenerateRefreshToken(user.ID.String(), user.Role, user.Username)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	if err := s.sessionRepository.CreateSession(ctx, &entities.Session{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshExpiry,
	}); err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpiry,
		User:         toUserResponse(user),
	}, nil
}

func (s *userService) Refresh(ctx context.Context, req domain.RefreshRequest) (domain.RefreshResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return domain.RefreshResponse{}, err
	}

	stored, err := s.sessionRepository.GetSessionByToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RefreshResponse{}, domain.ErrSessionNotFound
		}
		return domain.RefreshResponse{}, err
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.sessionRepository.DeleteSession(ctx, req.RefreshToken)
		return domain.RefreshResponse{}, domain.ErrSessionNotFound
	}

	accessToken, accessExpiry, err := s.jwtService.GenerateAccessToken(claims.UserID, claims.Role, claims.Username)
	if err != nil {
		return domain.RefreshResponse{}, err
	}

	return domain.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiry,
	}, nil
}

func (s *userService) Logout(ctx context.Context, req domain.LogoutRequest) error {
	return s.sessionRepository.DeleteSession(ctx, req.RefreshToken)
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.ErrHashPassword
		}
		user.Password = string(hashed)
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.UserResponse
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return response, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string, actorID string) error {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	// Audit rows restrict their actor; a referenced user stays.
	referenced, err := s.auditRepository.CountAuditLogsByUser(ctx, id)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return domain.ErrUserReferenced
	}

	if err := s.sessionRepository.DeleteSessionsByUser(ctx, id); err != nil {
		return err
	}
	return s.userRepository.DeleteUser(ctx, id)
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Do not reveal whether the email is registered.
			return nil
		}
		return err
	}

	token, err := s.jwtService.GenerateResetToken(user.ID.String())
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Click <a href=%q>here</a> to reset your password. The link expires in 15 minutes.</p>",
		user.Username, resetLink,
	)
	return mailing.SendMail(user.Email, "Reset your password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	userID, err := s.jwtService.ValidateResetToken(req.Token)
	if err != nil {
		return err
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrHashPassword
	}
	user.Password = string(hashed)

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	// Old sessions stop working once the password changes.
	return s.sessionRepository.DeleteSessionsByUser(ctx, userID)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		ImageURL: user.ImageURL,
	}
}
