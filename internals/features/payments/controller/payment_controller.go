// internals/features/payments/controller/payment_controller.go
package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"llc_backend/internals/features/payments/dto"
	"llc_backend/internals/features/payments/model"
	"llc_backend/internals/features/payments/repository"
	"llc_backend/internals/features/payments/service"
	helper "llc_backend/internals/helpers"
)

type PaymentStore interface {
	Create(ctx context.Context, payment *model.PaymentModel) error
	ListByEmail(ctx context.Context, email string) ([]model.PaymentModel, error)
}

// IntentCreator is the processor call, swappable in tests.
type IntentCreator func(orderID string, price float64, email string) (string, error)

type PaymentController struct {
	Store        PaymentStore
	CreateIntent IntentCreator
	Validate     *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		Store:        repository.NewPaymentRepository(db),
		CreateIntent: service.CreatePaymentIntent,
		Validate:     validator.New(),
	}
}

// 🟢 POST /create-payment-intent — delegates to the processor and hands the
// client secret back verbatim. Processor failures surface as an opaque 502;
// the cause only goes to the log.
func (ctrl *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	var body dto.CreateIntentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	orderID := fmt.Sprintf("LLC-%d", time.Now().UnixNano())
	secret, err := ctrl.CreateIntent(orderID, body.Price, helper.GetUserEmail(c))
	if err != nil {
		log.Printf("[ERROR] create payment intent: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment processor unavailable")
	}
	return c.JSON(fiber.Map{"clientSecret": secret})
}

// 🟢 POST /payments — records what the client reports after confirming the
// intent. The recorded email must be the authenticated one.
func (ctrl *PaymentController) RecordPayment(c *fiber.Ctx) error {
	var body dto.RecordPaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.Email != helper.GetUserEmail(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: you can only record your own payments")
	}

	payment := model.PaymentModel{
		Email:         body.Email,
		TransactionID: body.TransactionID,
		Amount:        body.Amount,
		ClassNames:    body.ClassNames,
		Date:          body.Date,
	}
	if err := ctrl.Store.Create(c.UserContext(), &payment); err != nil {
		log.Printf("[ERROR] record payment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}
	return helper.JsonCreated(c, fiber.Map{"inserted_id": payment.ID})
}

// 🟢 GET /payments?email= — one user's payment history, newest first.
func (ctrl *PaymentController) ListForUser(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]model.PaymentModel{})
	}

	payments, err := ctrl.Store.ListByEmail(c.UserContext(), email)
	if err != nil {
		log.Printf("[ERROR] list payments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list payments")
	}
	return c.JSON(payments)
}
