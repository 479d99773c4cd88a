package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingController "llc_backend/internals/features/bookings/controller"
	authMiddleware "llc_backend/internals/middlewares/auth"
)

func BookingRoutes(app fiber.Router, db *gorm.DB) {
	bookingCtrl := bookingController.NewBookingController(db)

	app.Post("/bookingclasses", bookingCtrl.Book)
	app.Get("/bookingclasses",
		authMiddleware.AuthRequired(),
		bookingCtrl.ListForUser,
	)
	app.Delete("/bookingclasses",
		authMiddleware.AuthRequired(),
		bookingCtrl.Cancel,
	)
}
