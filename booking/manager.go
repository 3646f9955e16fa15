package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dzoniops/room-booking-service/locks"
	"github.com/dzoniops/room-booking-service/models"
)

var tracer = otel.Tracer("github.com/dzoniops/room-booking-service/booking")

type Options struct {
	Store      Store
	Settings   SettingsResolver
	Roles      RoleResolver
	Locker     Locker
	Logger     log.Logger
	Registerer prometheus.Registerer
	Now        func() time.Time
	// LockWait bounds how long a writer waits for its room. Zero waits as long
	// as the caller's context allows.
	LockWait time.Duration
}

// Manager runs the reservation lifecycle. Writers to the same room are
// serialized by the Locker and by a row lock inside the store transaction.
type Manager struct {
	store    Store
	settings SettingsResolver
	roles    RoleResolver
	locker   Locker
	logger   log.Logger
	metrics  *metrics
	now      func() time.Time
	lockWait time.Duration
	pricing  PriceCalculator
	roster   RosterSynchronizer
}

func NewManager(opts Options) *Manager {
	m := &Manager{
		store:    opts.Store,
		settings: opts.Settings,
		roles:    opts.Roles,
		locker:   opts.Locker,
		logger:   opts.Logger,
		metrics:  newMetrics(opts.Registerer),
		now:      opts.Now,
		lockWait: opts.LockWait,
	}
	if m.locker == nil {
		m.locker = locks.NewKeyed()
	}
	if m.logger == nil {
		m.logger = log.NewNopLogger()
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.logger = log.With(m.logger, "component", "booking")
	return m
}

type CreateRequest struct {
	RoomID        int64
	Accommodation time.Time
	Release       time.Time
	Addons        Addons
	Guests        []models.Guest
	OwnerID       int64
}

type UpdateRequest struct {
	Accommodation time.Time
	Release       time.Time
	Addons        Addons
	Guests        []models.Guest
	ActorID       int64
}

// IsAvailable checks a window outside of any transaction. The answer may be
// stale by the time a write is attempted; Create and Update check again.
func (m *Manager) IsAvailable(
	ctx context.Context,
	roomID int64,
	start, end time.Time,
	exclude *int64,
) (bool, error) {
	return NewAvailabilityChecker(m.store.Reservations(), m.now).
		IsAvailable(ctx, roomID, start, end, exclude)
}

func (m *Manager) Create(ctx context.Context, req CreateRequest) (res *models.Reservation, err error) {
	ctx, span := tracer.Start(ctx, "booking.Create",
		trace.WithAttributes(attribute.Int64("room.id", req.RoomID)))
	defer func() { m.finish(span, "create", err) }()

	if !ValidWindow(req.Accommodation, req.Release, m.now()) {
		return nil, ErrInvalidWindow
	}
	surcharges, err := ResolveSurcharges(ctx, m.settings, req.Addons)
	if err != nil {
		return nil, err
	}

	unlock, err := m.lock(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	err = m.store.Atomic(ctx, func(tx Tx) error {
		room, err := tx.Rooms().Lock(ctx, req.RoomID)
		if err != nil {
			return err
		}
		available, err := NewAvailabilityChecker(tx.Reservations(), m.now).
			IsAvailable(ctx, room.ID, req.Accommodation, req.Release, nil)
		if err != nil {
			return err
		}
		if !available {
			return ErrSchedulingConflict
		}
		if err := checkCapacity(room, req.Guests); err != nil {
			return err
		}

		nightly := m.pricing.NightlyPrice(room, req.Guests, req.Addons, surcharges)
		r := &models.Reservation{
			RoomID:        room.ID,
			Accommodation: req.Accommodation,
			Release:       req.Release,
			AllInclusive:  req.Addons.AllInclusive,
			Breakfast:     req.Addons.Breakfast,
			Price:         m.pricing.StayPrice(nightly, req.Accommodation, req.Release),
			OwnerID:       req.OwnerID,
		}
		if err := tx.Reservations().Create(ctx, r); err != nil {
			return fmt.Errorf("creating reservation: %w", err)
		}

		guests, err := m.roster.Sync(ctx, tx.Guests(), r.ID, req.Guests)
		if err != nil {
			return err
		}
		r.Guests = guests
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	level.Info(m.logger).Log(
		"msg", "reservation booked",
		"reservation", res.ID,
		"room", res.RoomID,
		"owner", res.OwnerID,
		"price", res.Price,
	)
	return res, nil
}

// Update replaces the window, add-ons, price and roster of a reservation. The
// actor must own it or hold an elevated role. Authorization is checked first,
// so an actor without access gets ErrUnauthorized even for a window that
// conflicts or exceeds capacity; availability and capacity follow under the
// room lock.
func (m *Manager) Update(ctx context.Context, id int64, req UpdateRequest) (res *models.Reservation, err error) {
	ctx, span := tracer.Start(ctx, "booking.Update",
		trace.WithAttributes(attribute.Int64("reservation.id", id)))
	defer func() { m.finish(span, "update", err) }()

	current, err := m.store.Reservations().Reservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.authorize(ctx, current, req.ActorID); err != nil {
		return nil, err
	}
	if !ValidWindow(req.Accommodation, req.Release, m.now()) {
		return nil, ErrInvalidWindow
	}
	surcharges, err := ResolveSurcharges(ctx, m.settings, req.Addons)
	if err != nil {
		return nil, err
	}

	unlock, err := m.lock(ctx, current.RoomID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	err = m.store.Atomic(ctx, func(tx Tx) error {
		r, err := tx.Reservations().Reservation(ctx, id)
		if err != nil {
			return err
		}
		room, err := tx.Rooms().Lock(ctx, r.RoomID)
		if err != nil {
			return err
		}
		available, err := NewAvailabilityChecker(tx.Reservations(), m.now).
			IsAvailable(ctx, room.ID, req.Accommodation, req.Release, &r.ID)
		if err != nil {
			return err
		}
		if !available {
			return ErrSchedulingConflict
		}
		if err := checkCapacity(room, req.Guests); err != nil {
			return err
		}

		nightly := m.pricing.NightlyPrice(room, req.Guests, req.Addons, surcharges)
		r.Accommodation = req.Accommodation
		r.Release = req.Release
		r.AllInclusive = req.Addons.AllInclusive
		r.Breakfast = req.Addons.Breakfast
		r.Price = m.pricing.StayPrice(nightly, req.Accommodation, req.Release)
		if err := tx.Reservations().Replace(ctx, r); err != nil {
			return fmt.Errorf("replacing reservation %d: %w", id, err)
		}

		roster, err := m.roster.Sync(ctx, tx.Guests(), r.ID, req.Guests)
		if err != nil {
			return err
		}
		r.Guests = roster
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	level.Info(m.logger).Log(
		"msg", "reservation updated",
		"reservation", res.ID,
		"room", res.RoomID,
		"actor", req.ActorID,
		"price", res.Price,
	)
	return res, nil
}

// Delete removes a reservation with its guests and reports whether it existed.
func (m *Manager) Delete(ctx context.Context, id int64) (existed bool, err error) {
	ctx, span := tracer.Start(ctx, "booking.Delete",
		trace.WithAttributes(attribute.Int64("reservation.id", id)))
	defer func() { m.finish(span, "delete", err) }()

	err = m.store.Atomic(ctx, func(tx Tx) error {
		if err := tx.Guests().DeleteForReservation(ctx, id); err != nil {
			return fmt.Errorf("removing guests of reservation %d: %w", id, err)
		}
		existed, err = tx.Reservations().Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, err
	}
	if existed {
		level.Info(m.logger).Log("msg", "reservation deleted", "reservation", id)
	}
	return existed, nil
}

func (m *Manager) authorize(ctx context.Context, r *models.Reservation, actorID int64) error {
	if r.OwnerID == actorID {
		return nil
	}
	if m.roles == nil {
		return ErrUnauthorized
	}
	elevated, err := m.roles.Elevated(ctx, actorID)
	if err != nil {
		return fmt.Errorf("resolving role of user %d: %w", actorID, err)
	}
	if !elevated {
		return ErrUnauthorized
	}
	return nil
}

func (m *Manager) lock(ctx context.Context, roomID int64) (func(), error) {
	if m.lockWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.lockWait)
		defer cancel()
	}
	unlock, err := m.locker.Lock(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: room %d: %v", ErrLockUnavailable, roomID, err)
	}
	return unlock, nil
}

func (m *Manager) finish(span trace.Span, operation string, err error) {
	m.metrics.observe(operation, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		if rejected(err) {
			level.Debug(m.logger).Log("msg", "reservation rejected", "op", operation, "err", err)
		} else {
			level.Error(m.logger).Log("msg", "reservation failed", "op", operation, "err", err)
		}
	}
	span.End()
}

// checkCapacity counts the implicit owner on top of the named guests.
func checkCapacity(room *models.Room, guests []models.Guest) error {
	named := 0
	for _, g := range guests {
		if !g.Placeholder() {
			named++
		}
	}
	if named+1 > room.Capacity {
		return fmt.Errorf("%w: %d guests for room %d of capacity %d",
			ErrCapacityExceeded, named+1, room.ID, room.Capacity)
	}
	return nil
}

func rejected(err error) bool {
	for _, target := range []error{
		ErrInvalidWindow,
		ErrResourceNotFound,
		ErrSchedulingConflict,
		ErrCapacityExceeded,
		ErrUnauthorized,
		ErrReservationNotFound,
		ErrGuestConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
