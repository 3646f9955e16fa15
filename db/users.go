package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dzoniops/room-booking-service/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{db: gdb}
}

// Elevated is false for unknown users.
func (r *UserRepository) Elevated(ctx context.Context, userID int64) (bool, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading user %d: %w", userID, err)
	}
	return u.Elevated(), nil
}

func (r *UserRepository) Save(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	return nil
}
