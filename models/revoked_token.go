package models

import "time"

// RevokedToken records a token ID that logged out before its expiry.
// Rows past ExpiresAt are inert since the token itself is no longer valid.
type RevokedToken struct {
	JTI       string    `json:"jti" gorm:"primaryKey;column:jti"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
