// internals/middlewares/auth/role_middleware.go
package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"llc_backend/internals/constants"
	helper "llc_backend/internals/helpers"
)

// RoleDirectory answers the single lookup a role gate performs per request.
type RoleDirectory interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// OnlyRoles gates a route to the given roles. Must run after AuthRequired.
// The gate does exactly one directory lookup and never mutates state; every
// failure path returns immediately after writing the response.
func OnlyRoles(dir RoleDirectory, forbiddenMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := helper.GetUserEmail(c)
		if email == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - missing identity")
		}

		role, err := dir.RoleByEmail(c.UserContext(), email)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, forbiddenMessage)
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		if forbiddenMessage == "" {
			forbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, forbiddenMessage)
	}
}

// Shortcuts so the route files stay clean.
func OnlyAdmin(dir RoleDirectory, feature string) fiber.Handler {
	return OnlyRoles(dir, constants.RoleErrorAdmin(feature), constants.AdminOnly...)
}

func OnlyInstructor(dir RoleDirectory, feature string) fiber.Handler {
	return OnlyRoles(dir, constants.RoleErrorInstructor(feature), constants.InstructorOnly...)
}

func OnlyAdminOrInstructor(dir RoleDirectory, feature string) fiber.Handler {
	return OnlyRoles(dir, constants.RoleErrorStaff(feature), constants.AdminOrInstructor...)
}
