package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/dzoniops/room-booking-service/booking"
)

// Store is the booking.Store backed by gorm. A Store handed to an Atomic
// callback is bound to the transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

func (s *Store) Rooms() booking.RoomLookup {
	return NewRoomRepository(s.db)
}

func (s *Store) Reservations() booking.IntervalStore {
	return NewReservationRepository(s.db)
}

func (s *Store) Guests() booking.GuestStore {
	return NewGuestRepository(s.db)
}

func (s *Store) Atomic(ctx context.Context, fn func(tx booking.Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}
