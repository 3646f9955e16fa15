package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dzoniops/room-booking-service/booking"
	"github.com/dzoniops/room-booking-service/models"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(gdb *gorm.DB) *SettingRepository {
	return &SettingRepository{db: gdb}
}

func (r *SettingRepository) Number(ctx context.Context, key string) (float64, error) {
	var s models.Setting
	err := r.db.WithContext(ctx).Where("name = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %s", booking.ErrSettingNotConfigured, key)
	}
	if err != nil {
		return 0, fmt.Errorf("loading setting %s: %w", key, err)
	}
	return s.Value, nil
}

func (r *SettingRepository) Set(ctx context.Context, key string, value float64) error {
	err := r.db.WithContext(ctx).Save(&models.Setting{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("saving setting %s: %w", key, err)
	}
	return nil
}
