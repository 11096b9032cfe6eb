package auth

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"pawmart_backend/internals/configs"
)

// Gateway callback paths are posted by SSLCommerz, never by a logged-in
// browser, so they must stay outside auth.
var skipPaths = map[string]struct{}{
	"/api/payments/success": {},
	"/api/payments/fail":    {},
	"/api/payments/cancel":  {},
	"/api/payments/ipn":     {},
}

type Options struct {
	// Optional: when true a missing token is tolerated and the request
	// continues anonymously (public routes that personalize if possible).
	Optional bool
}

// AuthMiddleware parses the bearer token and stores the basic claims
// (user_id, user_email, userRole) in Locals.
func AuthMiddleware(opts ...Options) fiber.Handler {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	return func(c *fiber.Ctx) error {
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			if opt.Optional {
				return c.Next()
			}
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] token parse:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// small leeway for clock skew
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userID.String())

		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}
