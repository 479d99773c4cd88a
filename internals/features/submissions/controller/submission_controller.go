// internals/features/submissions/controller/submission_controller.go
package controller

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"llc_backend/internals/features/submissions/dto"
	"llc_backend/internals/features/submissions/model"
	"llc_backend/internals/features/submissions/repository"
	helper "llc_backend/internals/helpers"
)

type SubmissionStore interface {
	Create(ctx context.Context, submission *model.SubmissionModel) error
	List(ctx context.Context, submitterEmail string) ([]model.SubmissionModel, error)
	UpdateFields(ctx context.Context, id uuid.UUID, submitterEmail, name string, price float64, availableSeats int) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
	UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) (int64, error)
}

type SubmissionController struct {
	Store    SubmissionStore
	Validate *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{
		Store:    repository.NewSubmissionRepository(db),
		Validate: validator.New(),
	}
}

// 🟢 POST /addedClasses — instructor submits a class; status starts Pending
// via the column default. The submitter identity comes from the token.
func (ctrl *SubmissionController) Submit(c *fiber.Ctx) error {
	var body dto.SubmitClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	submission := model.SubmissionModel{
		SubmitterEmail: helper.GetUserEmail(c),
		SubmitterName:  body.SubmitterName,
		Name:           body.Name,
		Image:          body.Image,
		Price:          body.Price,
		Description:    body.Description,
		Days:           body.Days,
		AvailableSeats: body.AvailableSeats,
		Status:         model.StatusPending,
	}
	if err := ctrl.Store.Create(c.UserContext(), &submission); err != nil {
		log.Printf("[ERROR] submit class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit class")
	}
	return helper.JsonCreated(c, fiber.Map{"inserted_id": submission.ID})
}

// 🟢 GET /addedClasses — admin/instructor view. ?email= scopes to that
// submitter; without it the caller sees everything.
func (ctrl *SubmissionController) List(c *fiber.Ctx) error {
	submissions, err := ctrl.Store.List(c.UserContext(), c.Query("email"))
	if err != nil {
		log.Printf("[ERROR] list submissions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list submissions")
	}
	return c.JSON(submissions)
}

// 🟢 PUT /addedClasses/:id — submitter edits name/price/available_seats.
// The update is scoped to the authenticated submitter, so editing someone
// else's submission reports modified: 0.
func (ctrl *SubmissionController) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var body dto.EditSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	modified, err := ctrl.Store.UpdateFields(c.UserContext(), id, helper.GetUserEmail(c), body.Name, body.Price, body.AvailableSeats)
	if err != nil {
		log.Printf("[ERROR] edit submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to edit submission")
	}
	return c.JSON(fiber.Map{"modified": modified})
}

// 🟢 PATCH /addedClasses/:status/:id — admin review. The status segment is
// normalized: the literal "Approve" approves, anything else denies. Either
// value may overwrite the other later.
func (ctrl *SubmissionController) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	status := model.NormalizeStatus(c.Params("status"))
	modified, err := ctrl.Store.UpdateStatus(c.UserContext(), id, status)
	if err != nil {
		log.Printf("[ERROR] set submission status: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	return c.JSON(fiber.Map{"modified": modified, "status": status})
}

// 🟢 PATCH /addedClasses/:id — admin attaches feedback; only that field moves.
func (ctrl *SubmissionController) SetFeedback(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var body dto.FeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	modified, err := ctrl.Store.UpdateFeedback(c.UserContext(), id, body.Feedback)
	if err != nil {
		log.Printf("[ERROR] set submission feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to attach feedback")
	}
	return c.JSON(fiber.Map{"modified": modified})
}
