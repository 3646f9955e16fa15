package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dzoniops/room-booking-service/models"
)

// Interval is the stored window of one reservation.
type Interval struct {
	ReservationID int64
	Start         time.Time
	End           time.Time
}

type RoomLookup interface {
	// Room returns ErrResourceNotFound when the room does not exist.
	Room(ctx context.Context, id int64) (*models.Room, error)
	// Lock is Room plus a row lock held until the surrounding transaction ends.
	Lock(ctx context.Context, id int64) (*models.Room, error)
}

type IntervalStore interface {
	Intervals(ctx context.Context, roomID int64) ([]Interval, error)
	// Reservation returns ErrReservationNotFound when missing. Guests are preloaded.
	Reservation(ctx context.Context, id int64) (*models.Reservation, error)
	Create(ctx context.Context, r *models.Reservation) error
	// Replace overwrites the scalar fields of r; the roster is handled by GuestStore.
	Replace(ctx context.Context, r *models.Reservation) error
	Delete(ctx context.Context, id int64) (bool, error)

	ForOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Reservation, error)
	All(ctx context.Context, offset, limit int) ([]models.Reservation, error)
	Count(ctx context.Context) (int64, error)
	CountForOwner(ctx context.Context, ownerID int64) (int64, error)
}

type GuestStore interface {
	Guests(ctx context.Context, reservationID int64) ([]models.Guest, error)
	Insert(ctx context.Context, guests []models.Guest) error
	Update(ctx context.Context, guests []models.Guest) error
	Delete(ctx context.Context, ids []uuid.UUID) error
	DeleteForReservation(ctx context.Context, reservationID int64) error
	// Taken returns the subset of ids already stored for any reservation.
	Taken(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

// SettingsResolver returns ErrSettingNotConfigured for unknown keys.
type SettingsResolver interface {
	Number(ctx context.Context, key string) (float64, error)
}

type RoleResolver interface {
	Elevated(ctx context.Context, userID int64) (bool, error)
}

// Tx groups the repositories visible inside one atomic unit.
type Tx interface {
	Rooms() RoomLookup
	Reservations() IntervalStore
	Guests() GuestStore
}

// Store serves reads directly and runs writes through Atomic. If fn returns an
// error nothing it did is persisted.
type Store interface {
	Tx
	Atomic(ctx context.Context, fn func(tx Tx) error) error
}

// Locker serializes writers per room. The returned func releases the lock.
type Locker interface {
	Lock(ctx context.Context, roomID int64) (func(), error)
}
