// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingRoute "llc_backend/internals/features/bookings/route"
	classRoute "llc_backend/internals/features/catalog/route"
	paymentRoute "llc_backend/internals/features/payments/route"
	submissionRoute "llc_backend/internals/features/submissions/route"
	userRoute "llc_backend/internals/features/users/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH / USER BASE =====================
	log.Println("[INFO] Mounting user routes...")
	userRoute.UserRoutes(app, db)

	// ===================== CATALOG =====================
	log.Println("[INFO] Mounting catalog routes...")
	classRoute.ClassRoutes(app, db)

	// ===================== SUBMISSIONS =====================
	log.Println("[INFO] Mounting submission routes...")
	submissionRoute.SubmissionRoutes(app, db)

	// ===================== BOOKINGS =====================
	log.Println("[INFO] Mounting booking routes...")
	bookingRoute.BookingRoutes(app, db)

	// ===================== PAYMENTS =====================
	log.Println("[INFO] Mounting payment routes...")
	paymentRoute.PaymentRoutes(app, db)
}
