package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "llc_backend/internals/features/payments/controller"
	authMiddleware "llc_backend/internals/middlewares/auth"
)

func PaymentRoutes(app fiber.Router, db *gorm.DB) {
	paymentCtrl := paymentController.NewPaymentController(db)

	app.Post("/create-payment-intent",
		authMiddleware.AuthRequired(),
		paymentCtrl.CreatePaymentIntent,
	)
	app.Post("/payments",
		authMiddleware.AuthRequired(),
		paymentCtrl.RecordPayment,
	)
	app.Get("/payments", paymentCtrl.ListForUser)
}
