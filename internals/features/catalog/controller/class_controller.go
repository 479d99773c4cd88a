// internals/features/catalog/controller/class_controller.go
package controller

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"llc_backend/internals/features/catalog/dto"
	"llc_backend/internals/features/catalog/model"
	"llc_backend/internals/features/catalog/repository"
	helper "llc_backend/internals/helpers"
)

type ClassStore interface {
	ListByPopularity(ctx context.Context) ([]model.ClassModel, error)
	Create(ctx context.Context, class *model.ClassModel) error
	RecordEnrollment(ctx context.Context, id uuid.UUID) (int64, error)
}

type ClassController struct {
	Store    ClassStore
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{
		Store:    repository.NewClassRepository(db),
		Validate: validator.New(),
	}
}

// 🟢 GET /classes — all published classes, most popular first.
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	classes, err := ctrl.Store.ListByPopularity(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list classes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list classes")
	}
	return c.JSON(classes)
}

// 🟢 POST /classes — promotion of an approved submission into the catalog.
// The new row gets its own id; the submission stays untouched.
func (ctrl *ClassController) Publish(c *fiber.Ctx) error {
	var body dto.PublishClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	class := model.ClassModel{
		Name:            body.Name,
		Image:           body.Image,
		Price:           body.Price,
		Description:     body.Description,
		InstructorName:  body.InstructorName,
		InstructorEmail: body.InstructorEmail,
		Days:            body.Days,
		AvailableSeats:  body.AvailableSeats,
	}
	if err := ctrl.Store.Create(c.UserContext(), &class); err != nil {
		log.Printf("[ERROR] publish class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to publish class")
	}
	return helper.JsonCreated(c, fiber.Map{"inserted_id": class.ID})
}

// 🟢 PATCH /classes/:id — enrollment bump. The body carries the seat count
// the client read; a zero there short-circuits into a no-op, otherwise the
// guarded UPDATE decides (seats may have run out since the read).
func (ctrl *ClassController) RecordEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var body dto.EnrollClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.AvailableSeats == 0 {
		return c.JSON(fiber.Map{"modified": 0})
	}

	modified, err := ctrl.Store.RecordEnrollment(c.UserContext(), id)
	if err != nil {
		log.Printf("[ERROR] record enrollment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record enrollment")
	}
	return c.JSON(fiber.Map{"modified": modified})
}
