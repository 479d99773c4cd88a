// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"llc_backend/internals/configs"
	helper "llc_backend/internals/helpers"
)

// AuthRequired verifies the bearer token and stores the authenticated email
// (and the raw claims) in Locals. Expiry and signature are both checked by
// the parser; any failure short-circuits with 401.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - missing bearer token")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - invalid or expired token")
		}

		email, _ := claims["email"].(string)
		if email == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token has no email claim")
		}

		c.Locals(helper.LocUserEmail, email)
		c.Locals(helper.LocClaims, claims)
		return c.Next()
	}
}
