// internals/features/payments/repository/payment_repository.go
package repository

import (
	"context"

	"gorm.io/gorm"

	"llc_backend/internals/features/payments/model"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *model.PaymentModel) error {
	return r.DB.WithContext(ctx).Create(payment).Error
}

// ListByEmail returns one user's payments, newest first.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]model.PaymentModel, error) {
	var payments []model.PaymentModel
	if err := r.DB.WithContext(ctx).
		Where("email = ?", email).
		Order("date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
