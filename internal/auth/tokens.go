package auth

import (
	"time"

	"github.com/vaughan-dsouza/expert/internal/models"
	"github.com/vaughan-dsouza/expert/internal/utils"
)

// JWTIssuer signs HS256 access tokens and returns them with the Bearer prefix.
type JWTIssuer struct {
	Secret string
	TTL    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) JWTIssuer {
	return JWTIssuer{Secret: secret, TTL: ttl}
}

func (j JWTIssuer) CreateToken(userID int64, email string, role models.Role) (string, error) {
	signed, _, err := utils.GenerateToken(userID, email, role, j.Secret, j.TTL)
	if err != nil {
		return "", err
	}
	return utils.BearerPrefix + signed, nil
}
