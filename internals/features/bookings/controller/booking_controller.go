// internals/features/bookings/controller/booking_controller.go
package controller

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"llc_backend/internals/features/bookings/dto"
	"llc_backend/internals/features/bookings/model"
	"llc_backend/internals/features/bookings/repository"
	helper "llc_backend/internals/helpers"
)

type BookingStore interface {
	Create(ctx context.Context, booking *model.BookingModel) error
	ListByEmail(ctx context.Context, email string) ([]model.BookingModel, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, email string) (int64, error)
}

type BookingController struct {
	Store    BookingStore
	Validate *validator.Validate
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		Store:    repository.NewBookingRepository(db),
		Validate: validator.New(),
	}
}

// 🟢 POST /bookingclasses — records the selection as-is. Booking the same
// class twice is two rows; seat accounting happens on PATCH /classes/:id.
func (ctrl *BookingController) Book(c *fiber.Ctx) error {
	var body dto.BookClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	classID, err := uuid.Parse(body.ClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	booking := model.BookingModel{
		Email:         body.Email,
		ClassID:       classID,
		ClassName:     body.ClassName,
		Price:         body.Price,
		ClassSnapshot: body.ClassSnapshot,
	}
	if err := ctrl.Store.Create(c.UserContext(), &booking); err != nil {
		log.Printf("[ERROR] book class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to book class")
	}
	return helper.JsonCreated(c, fiber.Map{"inserted_id": booking.ID})
}

// 🟢 GET /bookingclasses?email= — a user only ever sees their own bookings.
// A mismatched email is 403; no email at all is an empty list, not an error.
func (ctrl *BookingController) ListForUser(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]model.BookingModel{})
	}
	if email != helper.GetUserEmail(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: you can only view your own bookings")
	}

	bookings, err := ctrl.Store.ListByEmail(c.UserContext(), email)
	if err != nil {
		log.Printf("[ERROR] list bookings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list bookings")
	}
	return c.JSON(bookings)
}

// 🟢 DELETE /bookingclasses?id= — cancel, scoped to the authenticated owner.
// Cancelling an unknown id reports deleted: 0 and succeeds.
func (ctrl *BookingController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	deleted, err := ctrl.Store.DeleteOwned(c.UserContext(), id, helper.GetUserEmail(c))
	if err != nil {
		log.Printf("[ERROR] cancel booking: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel booking")
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
