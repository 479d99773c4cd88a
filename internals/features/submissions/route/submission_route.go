package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "llc_backend/internals/features/submissions/controller"
	userRepository "llc_backend/internals/features/users/repository"
	authMiddleware "llc_backend/internals/middlewares/auth"
)

func SubmissionRoutes(app fiber.Router, db *gorm.DB) {
	submissionCtrl := submissionController.NewSubmissionController(db)
	directory := userRepository.NewUserRepository(db)

	app.Post("/addedClasses",
		authMiddleware.AuthRequired(),
		submissionCtrl.Submit,
	)
	app.Get("/addedClasses",
		authMiddleware.AuthRequired(),
		authMiddleware.OnlyAdminOrInstructor(directory, "class submissions"),
		submissionCtrl.List,
	)
	app.Put("/addedClasses/:id",
		authMiddleware.AuthRequired(),
		submissionCtrl.Edit,
	)
	app.Patch("/addedClasses/:status/:id",
		authMiddleware.AuthRequired(),
		authMiddleware.OnlyAdmin(directory, "submission review"),
		submissionCtrl.SetStatus,
	)
	app.Patch("/addedClasses/:id",
		authMiddleware.AuthRequired(),
		authMiddleware.OnlyAdmin(directory, "submission feedback"),
		submissionCtrl.SetFeedback,
	)
}
