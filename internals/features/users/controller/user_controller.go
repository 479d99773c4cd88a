// internals/features/users/controller/user_controller.go
package controller

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"llc_backend/internals/constants"
	"llc_backend/internals/features/users/dto"
	"llc_backend/internals/features/users/model"
	"llc_backend/internals/features/users/repository"
	helper "llc_backend/internals/helpers"
)

// UserStore is the slice of the directory the controller needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	Create(ctx context.Context, user *model.UserModel) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (int64, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	ListAll(ctx context.Context) ([]model.UserModel, error)
	ListInstructors(ctx context.Context) ([]model.UserModel, error)
}

type UserController struct {
	Store    UserStore
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		Store:    repository.NewUserRepository(db),
		Validate: validator.New(),
	}
}

// 🟢 POST /users — idempotent by email: re-registering reports "User Exist"
// and leaves the directory unchanged.
func (ctrl *UserController) Register(c *fiber.Ctx) error {
	var body dto.RegisterUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := ctrl.Store.FindByEmail(c.UserContext(), body.Email); err == nil {
		return c.JSON(fiber.Map{"message": "User Exist"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] register lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	user := model.UserModel{
		Name:  body.Name,
		Email: body.Email,
		Photo: body.Photo,
	}
	if err := ctrl.Store.Create(c.UserContext(), &user); err != nil {
		log.Printf("[ERROR] register insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return helper.JsonCreated(c, fiber.Map{"inserted_id": user.ID})
}

// 🟢 GET /users — full directory dump, admin-gated in the route table.
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := ctrl.Store.ListAll(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list users")
	}
	return c.JSON(users)
}

// 🟢 PATCH /users/:role/:id — overwrite of the role field. The role path
// segment must belong to the closed set; everything else is rejected.
func (ctrl *UserController) SetRole(c *fiber.Ctx) error {
	role := c.Params("role")
	if !constants.IsAssignableRole(role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role: "+role)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	modified, err := ctrl.Store.UpdateRole(c.UserContext(), id, role)
	if err != nil {
		log.Printf("[ERROR] set role: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	return c.JSON(fiber.Map{"modified": modified})
}

// 🟢 GET /users/:role/:email — {<role>: bool}. A missing user is simply false.
func (ctrl *UserController) HasRole(c *fiber.Ctx) error {
	role := c.Params("role")
	email := c.Params("email")

	actual, err := ctrl.Store.RoleByEmail(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{role: false})
		}
		log.Printf("[ERROR] has role: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check role")
	}
	return c.JSON(fiber.Map{role: actual == role})
}

// 🟢 GET /instructors — instructor listing sorted by students_in_class desc.
func (ctrl *UserController) ListInstructors(c *fiber.Ctx) error {
	instructors, err := ctrl.Store.ListInstructors(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list instructors: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list instructors")
	}
	return c.JSON(instructors)
}
