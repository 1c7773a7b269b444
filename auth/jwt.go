package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issueJWT signs a 24h session token carrying the identity and role claims
// the middleware gates on.
func issueJWT(userID, email, role, name string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
