package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims.
// The registered ID claim (jti) identifies the token for revocation.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	FirstName            string `json:"first_name" binding:"required,max=255"`
	LastName             string `json:"last_name" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email,max=255"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
