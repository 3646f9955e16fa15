package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dzoniops/room-booking-service/models"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(gdb *gorm.DB) *GuestRepository {
	return &GuestRepository{db: gdb}
}

func (r *GuestRepository) Guests(ctx context.Context, reservationID int64) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("position asc").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *GuestRepository) Insert(ctx context.Context, guests []models.Guest) error {
	if len(guests) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&guests).Error
}

func (r *GuestRepository) Update(ctx context.Context, guests []models.Guest) error {
	for _, g := range guests {
		err := r.db.WithContext(ctx).
			Model(&models.Guest{}).
			Where("id = ?", g.ID).
			Updates(map[string]any{
				"reservation_id": g.ReservationID,
				"name":           g.Name,
				"adult":          g.Adult,
				"position":       g.Position,
			}).Error
		if err != nil {
			return fmt.Errorf("updating guest %s: %w", g.ID, err)
		}
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", guestKeys(ids)).Delete(&models.Guest{}).Error
}

func guestKeys(ids []uuid.UUID) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	return keys
}

func (r *GuestRepository) Taken(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Guest
	err := r.db.WithContext(ctx).
		Select("id").
		Where("id IN ?", guestKeys(ids)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("looking up guests: %w", err)
	}
	taken := make([]uuid.UUID, len(rows))
	for i, g := range rows {
		taken[i] = g.ID
	}
	return taken, nil
}

func (r *GuestRepository) DeleteForReservation(ctx context.Context, reservationID int64) error {
	return r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Delete(&models.Guest{}).Error
}
