package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dzoniops/room-booking-service/booking"
	"github.com/dzoniops/room-booking-service/models"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(gdb *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: gdb}
}

func orderedGuests(q *gorm.DB) *gorm.DB {
	return q.Order("position asc")
}

func (r *ReservationRepository) Intervals(ctx context.Context, roomID int64) ([]booking.Interval, error) {
	var rows []models.Reservation
	err := r.db.WithContext(ctx).
		Select("id", "accommodation_date", "release_date").
		Where("room_id = ?", roomID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	intervals := make([]booking.Interval, len(rows))
	for i, row := range rows {
		intervals[i] = booking.Interval{
			ReservationID: row.ID,
			Start:         row.Accommodation,
			End:           row.Release,
		}
	}
	return intervals, nil
}

func (r *ReservationRepository) Reservation(ctx context.Context, id int64) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Guests", orderedGuests).
		Where("id = ?", id).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", booking.ErrReservationNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading reservation %d: %w", id, err)
	}
	return &res, nil
}

// Create stores the reservation row only; guests go through GuestRepository.
func (r *ReservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	res.Accommodation = res.Accommodation.UTC()
	res.Release = res.Release.UTC()
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(res).Error
}

func (r *ReservationRepository) Replace(ctx context.Context, res *models.Reservation) error {
	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", res.ID).
		Updates(map[string]any{
			"room_id":            res.RoomID,
			"accommodation_date": res.Accommodation.UTC(),
			"release_date":       res.Release.UTC(),
			"all_inclusive":      res.AllInclusive,
			"breakfast":          res.Breakfast,
			"price":              res.Price,
			"owner_id":           res.OwnerID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", booking.ErrReservationNotFound, res.ID)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Reservation{})
	if result.Error != nil {
		return false, fmt.Errorf("deleting reservation %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ReservationRepository) ForOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Reservation, error) {
	var out []models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Guests", orderedGuests).
		Where("owner_id = ?", ownerID).
		Order("accommodation_date desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing reservations of user %d: %w", ownerID, err)
	}
	return out, nil
}

func (r *ReservationRepository) All(ctx context.Context, offset, limit int) ([]models.Reservation, error) {
	var out []models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Guests", orderedGuests).
		Order("release_date asc").
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	return out, nil
}

func (r *ReservationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Reservation{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting reservations: %w", err)
	}
	return n, nil
}

func (r *ReservationRepository) CountForOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("owner_id = ?", ownerID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting reservations of user %d: %w", ownerID, err)
	}
	return n, nil
}
