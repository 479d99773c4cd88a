// internals/features/bookings/repository/booking_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"llc_backend/internals/features/bookings/model"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *model.BookingModel) error {
	return r.DB.WithContext(ctx).Create(booking).Error
}

func (r *BookingRepository) ListByEmail(ctx context.Context, email string) ([]model.BookingModel, error) {
	var bookings []model.BookingModel
	if err := r.DB.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// DeleteOwned removes a booking only when it belongs to the given email.
// A missing or foreign id deletes zero rows, which is still a success.
func (r *BookingRepository) DeleteOwned(ctx context.Context, id uuid.UUID, email string) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND email = ?", id, email).
		Delete(&model.BookingModel{})
	return res.RowsAffected, res.Error
}
