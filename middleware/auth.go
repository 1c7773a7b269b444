package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/devshahzaibali/FSH-Traders/session"
)

// ValidateToken checks the session JWT and resolves the request's auth gate.
// Identity and role land in the context for handlers.
func ValidateToken(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	identity := session.Identity{ID: userID, Email: email, Name: name, Role: session.Role(role)}

	c.Set("user_id", userID)
	c.Set("role", role)
	c.Set("gate", session.Resolved(identity))

	c.Next()
}

// GateFrom returns the request's resolved auth gate. Requests that skipped
// ValidateToken get an anonymous gate.
func GateFrom(c *gin.Context) *session.Gate {
	if v, ok := c.Get("gate"); ok {
		if g, ok := v.(*session.Gate); ok {
			return g
		}
	}
	return session.Anonymous()
}
