// internals/features/catalog/repository/class_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"llc_backend/internals/features/catalog/model"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

// ListByPopularity returns every published class, most enrolled first.
func (r *ClassRepository) ListByPopularity(ctx context.Context) ([]model.ClassModel, error) {
	var classes []model.ClassModel
	if err := r.DB.WithContext(ctx).Order("total_enroll DESC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepository) Create(ctx context.Context, class *model.ClassModel) error {
	return r.DB.WithContext(ctx).Create(class).Error
}

// RecordEnrollment pairs the counter moves in one guarded UPDATE so a sold-out
// class can never be oversold: the row only matches while seats remain.
// Returns the matched-row count (0 when sold out or id unknown).
func (r *ClassRepository) RecordEnrollment(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.ClassModel{}).
		Where("id = ? AND available_seats > 0", id).
		Updates(map[string]interface{}{
			"total_enroll":    gorm.Expr("total_enroll + 1"),
			"available_seats": gorm.Expr("available_seats - 1"),
		})
	return res.RowsAffected, res.Error
}
