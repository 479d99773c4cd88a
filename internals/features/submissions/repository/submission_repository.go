// internals/features/submissions/repository/submission_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"llc_backend/internals/features/submissions/model"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *model.SubmissionModel) error {
	return r.DB.WithContext(ctx).Create(submission).Error
}

// List returns all submissions, or only one submitter's when email is set.
func (r *SubmissionRepository) List(ctx context.Context, submitterEmail string) ([]model.SubmissionModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.SubmissionModel{})
	if submitterEmail != "" {
		q = q.Where("submitter_email = ?", submitterEmail)
	}

	var submissions []model.SubmissionModel
	if err := q.Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// UpdateFields overwrites name/price/available_seats, scoped to the submitter
// so someone else's submission matches zero rows.
func (r *SubmissionRepository) UpdateFields(ctx context.Context, id uuid.UUID, submitterEmail, name string, price float64, availableSeats int) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.SubmissionModel{}).
		Where("id = ? AND submitter_email = ?", id, submitterEmail).
		Updates(map[string]interface{}{
			"name":            name,
			"price":           price,
			"available_seats": availableSeats,
		})
	return res.RowsAffected, res.Error
}

func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.SubmissionModel{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *SubmissionRepository) UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.SubmissionModel{}).
		Where("id = ?", id).
		Update("feedback", feedback)
	return res.RowsAffected, res.Error
}
