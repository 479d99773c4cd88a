package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "llc_backend/internals/features/catalog/controller"
)

func ClassRoutes(app fiber.Router, db *gorm.DB) {
	classCtrl := classController.NewClassController(db)

	app.Get("/classes", classCtrl.ListClasses)
	app.Post("/classes", classCtrl.Publish)
	app.Patch("/classes/:id", classCtrl.RecordEnrollment)
}
