package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/models"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/config"
)

// InterfaceJWTService defines the authentication service interface
type InterfaceJWTService interface {
	GenerateToken(admin *models.Admin) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*AdminClaims, error)
	Login(email, password string) (*LoginResult, error)
}

// LoginResult is what a successful login hands back to the boundary
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// AdminClaims carries the signed account record and role
type AdminClaims struct {
	Data models.Admin `json:"data"`
	Role string       `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 bearer tokens
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// NewJWTService creates a new authentication service
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "afartech-admin-service",
		DB:        db,
	}
}

// GenerateToken signs a token embedding the full account record and role.
// The password field of the embedded record holds the stored hash, never a
// plaintext password.
func (s *JWTService) GenerateToken(admin *models.Admin) (string, error) {
	now := time.Now()
	claims := &AdminClaims{
		Data: *admin,
		Role: admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses and verifies a token's signature
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims verifies a token and returns its claims
func (s *JWTService) ExtractClaims(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// Login verifies an email/password pair and issues a token. An unknown email
// reports ErrAdminNotFound, a password mismatch ErrInvalidCredentials; no
// token is issued in either case.
func (s *JWTService) Login(email, password string) (*LoginResult, error) {
	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&admin)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		Role:  admin.Role,
	}, nil
}
