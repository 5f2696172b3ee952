package services

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/protrack-simple/dto"
	"github.com/protrack-simple/models"
	"github.com/protrack-simple/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	userRepo    = repositories.NewUserRepository()
	revokedRepo = repositories.NewRevokedTokenRepository()
)

// Register creates a new user account and returns an access token
func Register(req dto.RegisterRequest) (string, error) {
	email := strings.ToLower(req.Email)

	// Check if email already exists
	taken, err := userRepo.EmailTaken(email)
	if err != nil {
		return "", err
	}
	if taken {
		return "", NewValidationError("email", "The email has already been taken.")
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		FirstName: strings.ToLower(req.FirstName),
		LastName:  strings.ToLower(req.LastName),
		Email:     email,
		Password:  string(hashedPassword),
	}

	user, err = userRepo.Create(user)
	if err != nil {
		return "", err
	}

	token, err := GenerateToken(user.ID, user.Email)
	return token, err
}

// GetUser retrieves a user by ID
func GetUser(id string) (models.User, error) {
	user, err := userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, NotFoundError{Resource: "User"}
	}
	return user, err
}

// Login authenticates a user and returns an access token
func Login(req dto.LoginRequest) (string, error) {
	email := strings.ToLower(req.Email)

	user, err := userRepo.FindByEmail(email)
	if err != nil {
		return "", ErrUserNotFound
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return GenerateToken(user.ID, user.Email)
}

// Logout revokes the presented token so it can no longer authenticate
func Logout(claims *dto.TokenClaims) error {
	expiresAt := time.Now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return revokedRepo.Revoke(claims.ID, expiresAt)
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID, email string) (string, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", errors.New("JWT_SECRET not set in environment")
	}

	// Set expiration time
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken validates a JWT token and returns claims if valid.
// Revoked tokens are rejected even before their expiry.
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	// Parse the token
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	revoked, err := revokedRepo.IsRevoked(claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, errors.New("token has been revoked")
	}

	return claims, nil
}
