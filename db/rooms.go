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

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(gdb *gorm.DB) *RoomRepository {
	return &RoomRepository{db: gdb}
}

func (r *RoomRepository) Room(ctx context.Context, id int64) (*models.Room, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// Lock takes the row with FOR UPDATE. The sqlite dialect drops the clause.
func (r *RoomRepository) Lock(ctx context.Context, id int64) (*models.Room, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *RoomRepository) first(q *gorm.DB, id int64) (*models.Room, error) {
	var room models.Room
	err := q.Where("id = ?", id).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", booking.ErrResourceNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading room %d: %w", id, err)
	}
	return &room, nil
}

// Save inserts or overwrites a catalog entry.
func (r *RoomRepository) Save(ctx context.Context, room *models.Room) error {
	if err := r.db.WithContext(ctx).Save(room).Error; err != nil {
		return fmt.Errorf("saving room: %w", err)
	}
	return nil
}
