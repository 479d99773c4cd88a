// internals/features/users/repository/user_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"llc_backend/internals/constants"
	"llc_backend/internals/features/users/model"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.UserModel) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

// UpdateRole overwrites the role field only. Returns the matched-row count so
// a missing id surfaces as a zero-rows result, not an error.
func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("role", role)
	return res.RowsAffected, res.Error
}

// RoleByEmail backs the role gates: one lookup per request.
func (r *UserRepository) RoleByEmail(ctx context.Context, email string) (string, error) {
	var user model.UserModel
	if err := r.DB.WithContext(ctx).Select("role").Where("email = ?", email).First(&user).Error; err != nil {
		return "", err
	}
	return user.Role, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.UserModel, error) {
	var users []model.UserModel
	if err := r.DB.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListInstructors is the instructor listing projection: role = instructor,
// most students first.
func (r *UserRepository) ListInstructors(ctx context.Context) ([]model.UserModel, error) {
	var users []model.UserModel
	if err := r.DB.WithContext(ctx).
		Where("role = ?", constants.RoleInstructor).
		Order("students_in_class DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
