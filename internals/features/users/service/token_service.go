package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"pawmart_backend/internals/configs"
	"pawmart_backend/internals/features/users/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// GenerateAccessToken signs the short-lived bearer token the SPA sends
// on every request.
func GenerateAccessToken(u *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"email":     u.UserEmail,
		"user_name": u.UserName,
		"role":      u.UserRole,
		"exp":       time.Now().Add(AccessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// GenerateRefreshToken signs the long-lived cookie token.
func GenerateRefreshToken(u *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.UserID.String(),
		"typ":     "refresh",
		"exp":     time.Now().Add(RefreshTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken verifies the refresh cookie and returns the user id
// claim.
func ParseRefreshToken(raw string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return "", err
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", fmt.Errorf("not a refresh token")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", fmt.Errorf("missing user_id claim")
	}
	return userID, nil
}

// SetAuthCookies mirrors the tokens into httpOnly cookies for clients
// that prefer cookie auth over the Authorization header.
func SetAuthCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  time.Now().Add(AccessTokenTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  time.Now().Add(RefreshTokenTTL),
	})
}

func ClearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true})
}
