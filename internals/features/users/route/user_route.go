package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "llc_backend/internals/features/users/controller"
	userRepository "llc_backend/internals/features/users/repository"
	"llc_backend/internals/middlewares"
	authMiddleware "llc_backend/internals/middlewares/auth"
)

func UserRoutes(app fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)
	tokenCtrl := userController.NewTokenController()
	directory := userRepository.NewUserRepository(db)

	app.Post("/jwt", tokenCtrl.IssueToken)

	app.Post("/users", middlewares.RegisterRateLimiter(), userCtrl.Register)
	app.Get("/users",
		authMiddleware.AuthRequired(),
		authMiddleware.OnlyAdmin(directory, "user directory"),
		userCtrl.ListUsers,
	)
	app.Patch("/users/:role/:id", userCtrl.SetRole)
	app.Get("/users/:role/:email", userCtrl.HasRole)

	app.Get("/instructors", userCtrl.ListInstructors)
}
