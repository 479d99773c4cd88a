// internals/features/users/controller/token_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"llc_backend/internals/configs"
	"llc_backend/internals/features/users/dto"
	helper "llc_backend/internals/helpers"
)

const accessTokenTTL = time.Hour

type TokenController struct {
	Validate *validator.Validate
}

func NewTokenController() *TokenController {
	return &TokenController{Validate: validator.New()}
}

// 🟢 POST /jwt — issues a signed identity token for the given claims.
// There is no credential check here: the client identifies itself by email
// and the role gates do the real authorization work per request.
func (ctrl *TokenController) IssueToken(c *fiber.Ctx) error {
	var body dto.IssueTokenRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	token, err := IssueToken(body.Email, body.Name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	return c.JSON(fiber.Map{"token": token})
}

// IssueToken signs an HS256 access token carrying the email claim, expiring
// after one hour. No refresh mechanism.
func IssueToken(email, name string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}
	if name != "" {
		claims["name"] = name
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
