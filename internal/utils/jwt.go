package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"namo_back_end/internal/models"
)

// GenerateJWT issues the bearer credential returned by login: HS256-signed,
// 24h expiry, with the role claim the admin gate checks.
func GenerateJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
