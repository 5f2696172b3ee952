package repositories

import (
	"time"

	"github.com/protrack-simple/database"
	"github.com/protrack-simple/models"
	"gorm.io/gorm/clause"
)

// RevokedTokenRepository tracks tokens invalidated by logout
type RevokedTokenRepository struct{}

// NewRevokedTokenRepository creates a new revoked token repository instance
func NewRevokedTokenRepository() *RevokedTokenRepository {
	return &RevokedTokenRepository{}
}

// Revoke records a token ID as logged out. Revoking an already revoked
// token is a no-op.
func (r *RevokedTokenRepository) Revoke(jti string, expiresAt time.Time) error {
	token := models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}
	result := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&token)
	return result.Error
}

// IsRevoked reports whether a token ID has been revoked
func (r *RevokedTokenRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}
