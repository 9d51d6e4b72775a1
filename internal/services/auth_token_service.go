package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type AuthTokenClaims struct {
	OwnerApp string `json:"owner_app"`
	jwt.RegisteredClaims
}

type AuthTokenService struct {
	tokenRepo *repository.AuthTokenRepository
	jwtSecret string
	ttl       time.Duration
}

func NewAuthTokenService(tokenRepo *repository.AuthTokenRepository, jwtSecret string, ttl time.Duration) *AuthTokenService {
	return &AuthTokenService{
		tokenRepo: tokenRepo,
		jwtSecret: jwtSecret,
		ttl:       ttl,
	}
}

// Generate signs a new auth token for user and stores it.
func (s *AuthTokenService) Generate(user *models.User, ownerApp string) (*models.AuthToken, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := AuthTokenClaims{
		OwnerApp: ownerApp,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ExternalID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "ewallet",
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return s.store(user, tokenString, ownerApp, expiresAt)
}

// Register stores an opaque token chosen by the caller, valid for the
// configured TTL.
func (s *AuthTokenService) Register(user *models.User, tokenString, ownerApp string) (*models.AuthToken, error) {
	return s.store(user, tokenString, ownerApp, time.Now().Add(s.ttl))
}

func (s *AuthTokenService) store(user *models.User, tokenString, ownerApp string, expiresAt time.Time) (*models.AuthToken, error) {
	authToken := &models.AuthToken{
		UserID:    user.ID,
		Token:     tokenString,
		OwnerApp:  ownerApp,
		ExpiresAt: expiresAt,
	}
	if err := s.tokenRepo.Create(authToken); err != nil {
		return nil, err
	}
	authToken.User = *user
	return authToken, nil
}

// Authenticate resolves a token to its user. The stored row is authoritative;
// tokens issued by Generate additionally carry a signature that must verify
// and name the same user.
func (s *AuthTokenService) Authenticate(tokenString string) (*models.User, error) {
	dbToken, err := s.tokenRepo.FindByToken(tokenString)
	if err != nil {
		return nil, err
	}
	if dbToken == nil {
		return nil, ErrInvalidToken
	}

	if strings.Count(tokenString, ".") == 2 {
		claims, err := s.parse(tokenString)
		if err != nil {
			return nil, err
		}
		if claims.Subject != dbToken.User.ExternalID {
			return nil, ErrInvalidToken
		}
	}

	return &dbToken.User, nil
}

func (s *AuthTokenService) parse(tokenString string) (*AuthTokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthTokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthTokenService) Revoke(tokenString string) error {
	return s.tokenRepo.DeleteByToken(tokenString)
}
