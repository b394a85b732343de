package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yigit/ams/internal/app/models"
)

// JWT errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey      string
	AccessTokenExp time.Duration
	TokenIssuer    string
}

// JWTService handles JWT operations
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// Principal is the authenticated caller carried by an access token
type Principal struct {
	UserID    int64           `json:"userId"`
	Email     string          `json:"email"`
	RoleType  models.RoleType `json:"roleType"`
	CollegeID int64           `json:"collegeId"`
}

// Claims defines JWT token content
type Claims struct {
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	RoleType  string `json:"roleType"`
	CollegeID int64  `json:"collegeId"`
	jwt.RegisteredClaims
}

// Principal returns the caller described by the claims
func (c *Claims) Principal() Principal {
	return Principal{
		UserID:    c.UserID,
		Email:     c.Email,
		RoleType:  models.RoleType(c.RoleType),
		CollegeID: c.CollegeID,
	}
}

// GenerateAccessToken signs an HS256 access token for p and returns it with its lifetime in seconds
func (s *JWTService) GenerateAccessToken(p Principal) (accessToken string, expiresIn int, err error) {
	now := time.Now()

	claims := &Claims{
		UserID:    p.UserID,
		Email:     p.Email,
		RoleType:  string(p.RoleType),
		CollegeID: p.CollegeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err = token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create access token: %w", err)
	}

	return accessToken, int(s.config.AccessTokenExp.Seconds()), nil
}

// ValidateToken validates a token
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	return authHeader, nil
}

// ValidateAndExtractClaims validates and extracts claims from a token string
func (s *JWTService) ValidateAndExtractClaims(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.UserID <= 0 || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	switch models.RoleType(claims.RoleType) {
	case models.RoleCollege, models.RoleHOD, models.RoleFaculty, models.RoleStudent:
	default:
		return nil, ErrInvalidToken
	}

	return claims, nil
}
