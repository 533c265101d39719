package jwt

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/internal/utils"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	AccessTokenDuration  = time.Hour
	RefreshTokenDuration = 30 * 24 * time.Hour
	ResetTokenDuration   = 15 * time.Minute
)

type (
	JWTService interface {
		GenerateAccessToken(userID, role, username string) (string, time.Time, error)
		GenerateRefreshToken(userID, role, username string) (string, time.Time, error)
		ValidateAccessToken(token string) (*UserClaims, error)
		ValidateRefreshToken(token string) (*UserClaims, error)
		GenerateResetToken(userID string) (string, error)
		ValidateResetToken(token string) (string, error)
	}

	UserClaims struct {
		UserID   string `json:"user_id"`
		Role     string `json:"role"`
		Username string `json:"username"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey        string
		refreshSecretKey string
		issuer           string
	}
)

func NewJWTService() JWTService {
	return &jwtService{
		secretKey:        utils.GetConfig("JWT_SECRET"),
		refreshSecretKey: utils.GetConfig("JWT_REFRESH_SECRET"),
		issuer:           "STOCKIFY",
	}
}

// NewJWTServiceWithSecrets is used by tests and tools that do not load config.yaml.
func NewJWTServiceWithSecrets(secret, refreshSecret string) JWTService {
	return &jwtService{
		secretKey:        secret,
		refreshSecretKey: refreshSecret,
		issuer:           "STOCKIFY",
	}
}

func (j *jwtService) generate(userID, role, username, secret string, duration time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(duration)
	claims := UserClaims{
		userID,
		role,
		username,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    j.issuer,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (j *jwtService) GenerateAccessToken(userID, role, username string) (string, time.Time, error) {
	return j.generate(userID, role, username, j.secretKey, AccessTokenDuration)
}

func (j *jwtService) GenerateRefreshToken(userID, role, username string) (string, time.Time, error) {
	return j.generate(userID, role, username, j.refreshSecretKey, RefreshTokenDuration)
}

func (j *jwtService) validate(token, secret string) (*UserClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &UserClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*UserClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func (j *jwtService) ValidateAccessToken(token string) (*UserClaims, error) {
	return j.validate(token, j.secretKey)
}

func (j *jwtService) ValidateRefreshToken(token string) (*UserClaims, error) {
	return j.validate(token, j.refreshSecretKey)
}

func (j *jwtService) GenerateResetToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"purpose": "password_reset",
		"exp":     time.Now().Add(ResetTokenDuration).Unix(),
		"iat":     time.Now().Unix(),
		"iss":     j.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) ValidateResetToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != "password_reset" {
		return "", domain.ErrTokenInvalid
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", domain.ErrTokenInvalid
	}
	return userID, nil
}
