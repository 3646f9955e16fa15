package booking_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dzoniops/room-booking-service/booking"
	"github.com/dzoniops/room-booking-service/db"
	"github.com/dzoniops/room-booking-service/locks"
	"github.com/dzoniops/room-booking-service/models"
)

var now = time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

const (
	roomID   = int64(1)
	smallID  = int64(2)
	ownerID  = int64(10)
	otherID  = int64(11)
	staffID  = int64(12)
	unknownR = int64(99)
)

type env struct {
	gdb     *gorm.DB
	manager *booking.Manager
	locker  *locks.Keyed
}

func newEnv(t *testing.T) *env {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := db.Open(db.Config{
		Driver: db.DriverSQLite,
		DSN:    db.SQLiteDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	ctx := context.Background()
	rooms := db.NewRoomRepository(gdb)
	require.NoError(t, rooms.Save(ctx, &models.Room{ID: roomID, Name: "Lake", Capacity: 4, AdultPrice: 100, ChildPrice: 50}))
	require.NoError(t, rooms.Save(ctx, &models.Room{ID: smallID, Name: "Attic", Capacity: 2, AdultPrice: 60, ChildPrice: 30}))
	users := db.NewUserRepository(gdb)
	require.NoError(t, users.Save(ctx, &models.User{ID: ownerID, Name: "owner", Role: models.RoleUser}))
	require.NoError(t, users.Save(ctx, &models.User{ID: otherID, Name: "other", Role: models.RoleUser}))
	require.NoError(t, users.Save(ctx, &models.User{ID: staffID, Name: "staff", Role: "Receptionist"}))
	require.NoError(t, db.NewSettingRepository(gdb).Set(ctx, models.SettingAllInclusivePrice, 40))

	locker := locks.NewKeyed()
	return &env{
		gdb:    gdb,
		locker: locker,
		manager: booking.NewManager(booking.Options{
			Store:    db.NewStore(gdb),
			Settings: db.NewSettingRepository(gdb),
			Roles:    db.NewUserRepository(gdb),
			Locker:   locker,
			Now:      func() time.Time { return now },
		}),
	}
}

func (e *env) create(t *testing.T, room int64, start, end time.Time, guests ...models.Guest) *models.Reservation {
	t.Helper()
	r, err := e.manager.Create(context.Background(), booking.CreateRequest{
		RoomID:        room,
		Accommodation: start,
		Release:       end,
		Guests:        guests,
		OwnerID:       ownerID,
	})
	require.NoError(t, err)
	return r
}

func (e *env) guestCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.gdb.Model(&models.Guest{}).Count(&n).Error)
	return n
}

func TestCreatePricesStay(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	guests := []models.Guest{
		{Name: "Ana", Adult: true},
		{Name: "Marko", Adult: true},
		{Name: "Mia"},
	}

	r, err := e.manager.Create(ctx, booking.CreateRequest{
		RoomID: roomID, Accommodation: day(1), Release: day(4), Guests: guests, OwnerID: ownerID,
	})
	require.NoError(t, err)
	assert.NotZero(t, r.ID)
	assert.Equal(t, 1050.0, r.Price)
	require.Len(t, r.Guests, 3)
	for _, g := range r.Guests {
		assert.NotEqual(t, uuid.Nil, g.ID)
		assert.Equal(t, r.ID, g.ReservationID)
	}

	r, err = e.manager.Create(ctx, booking.CreateRequest{
		RoomID: roomID, Accommodation: day(10), Release: day(13), Guests: guests, OwnerID: ownerID,
		Addons: booking.Addons{AllInclusive: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1170.0, r.Price)

	stored, err := e.manager.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1170.0, stored.Price)
	assert.True(t, stored.AllInclusive)
	assert.Equal(t, []string{"Ana", "Marko", "Mia"}, names(stored.Guests))
}

func TestCreateBoundaries(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.create(t, roomID, day(5), day(10))

	tests := []struct {
		name       string
		start, end time.Time
		err        error
	}{
		{"abuts after", day(10), day(12), nil},
		{"ends on existing start", day(3), day(5), booking.ErrSchedulingConflict},
		{"same start", day(5), day(6), booking.ErrSchedulingConflict},
		{"same end", day(8), day(10), booking.ErrSchedulingConflict},
		{"inside", day(6), day(7), booking.ErrSchedulingConflict},
		{"around", day(4), day(11), booking.ErrSchedulingConflict},
		{"well before", day(1), day(3), nil},
		{"in the past", day(-3), day(-1), booking.ErrInvalidWindow},
		{"inverted", day(20), day(19), booking.ErrInvalidWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.manager.Create(ctx, booking.CreateRequest{
				RoomID: roomID, Accommodation: tt.start, Release: tt.end, OwnerID: ownerID,
			})
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}

	_, err := e.manager.Create(ctx, booking.CreateRequest{
		RoomID: smallID, Accommodation: day(5), Release: day(10), OwnerID: ownerID,
	})
	require.NoError(t, err, "other rooms are independent")
}

func TestCreateRejections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.manager.Create(ctx, booking.CreateRequest{
		RoomID: unknownR, Accommodation: day(1), Release: day(2), OwnerID: ownerID,
	})
	require.ErrorIs(t, err, booking.ErrResourceNotFound)

	_, err = e.manager.Create(ctx, booking.CreateRequest{
		RoomID: smallID, Accommodation: day(1), Release: day(2), OwnerID: ownerID,
		Guests: []models.Guest{{Name: "A", Adult: true}, {Name: "B", Adult: true}},
	})
	require.ErrorIs(t, err, booking.ErrCapacityExceeded)

	_, err = e.manager.Create(ctx, booking.CreateRequest{
		RoomID: roomID, Accommodation: day(1), Release: day(2), OwnerID: ownerID,
		Addons: booking.Addons{Breakfast: true},
	})
	require.ErrorIs(t, err, booking.ErrConfigurationMissing)

	count, err := e.manager.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Zero(t, e.guestCount(t))
}

func TestPlaceholdersIgnoredForCapacity(t *testing.T) {
	e := newEnv(t)

	r := e.create(t, smallID, day(1), day(2), models.Guest{Name: "A", Adult: true}, models.Guest{}, models.Guest{})
	assert.Equal(t, 120.0, r.Price)
	assert.Len(t, r.Guests, 3)
}

func TestUpdate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.create(t, roomID, day(5), day(10), models.Guest{Name: "A", Adult: true})
	e.create(t, roomID, day(12), day(14))

	updated, err := e.manager.Update(ctx, r.ID, booking.UpdateRequest{
		Accommodation: day(6),
		Release:       day(11),
		Addons:        booking.Addons{AllInclusive: true},
		Guests:        []models.Guest{{ID: r.Guests[0].ID, Name: "A", Adult: true}, {Name: "kid"}},
		ActorID:       ownerID,
	})
	require.NoError(t, err, "overlapping its own old window is allowed")
	assert.Equal(t, (100+50+100+40)*5.0, updated.Price)

	_, err = e.manager.Update(ctx, r.ID, booking.UpdateRequest{
		Accommodation: day(9), Release: day(13), ActorID: ownerID,
	})
	require.ErrorIs(t, err, booking.ErrSchedulingConflict)

	_, err = e.manager.Update(ctx, r.ID, booking.UpdateRequest{
		Accommodation: day(6), Release: day(11), ActorID: ownerID,
		Guests: []models.Guest{{Name: "1"}, {Name: "2"}, {Name: "3"}, {Name: "4"}},
	})
	require.ErrorIs(t, err, booking.ErrCapacityExceeded)

	_, err = e.manager.Update(ctx, unknownR, booking.UpdateRequest{
		Accommodation: day(6), Release: day(11), ActorID: ownerID,
	})
	require.ErrorIs(t, err, booking.ErrReservationNotFound)

	stored, err := e.manager.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, stored.Accommodation.Equal(day(6)))
	assert.True(t, stored.Release.Equal(day(11)))
	assert.Equal(t, updated.Price, stored.Price)
	assert.Equal(t, []string{"A", "kid"}, names(stored.Guests))
}

func TestUpdateAuthorization(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.create(t, roomID, day(5), day(10), models.Guest{Name: "A", Adult: true})

	_, err := e.manager.Update(ctx, r.ID, booking.UpdateRequest{
		Accommodation: day(20), Release: day(22), ActorID: otherID,
	})
	require.ErrorIs(t, err, booking.ErrUnauthorized)

	stored, err := e.manager.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, stored.Accommodation.Equal(day(5)))
	assert.Equal(t, r.Price, stored.Price)
	assert.Equal(t, []string{"A"}, names(stored.Guests))

	updated, err := e.manager.Update(ctx, r.ID, booking.UpdateRequest{
		Accommodation: day(20), Release: day(22), ActorID: staffID,
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, updated.OwnerID)
	assert.Equal(t, 200.0, updated.Price)
}

func TestUpdateSyncsGuests(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.create(t, roomID, day(5), day(10),
		models.Guest{Name: "A", Adult: true},
		models.Guest{Name: "B", Adult: true},
	)
	a, b := r.Guests[0], r.Guests[1]

	updated, err := e.manager.Update(ctx, r.ID, booking.UpdateRequest{
		Accommodation: day(5),
		Release:       day(10),
		Guests:        []models.Guest{{ID: b.ID, Name: "B updated"}, {Name: "C", Adult: true}},
		ActorID:       ownerID,
	})
	require.NoError(t, err)
	require.Len(t, updated.Guests, 2)

	stored, err := e.manager.Get(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, stored.Guests, 2)
	assert.Equal(t, b.ID, stored.Guests[0].ID)
	assert.Equal(t, "B updated", stored.Guests[0].Name)
	assert.False(t, stored.Guests[0].Adult)
	assert.Equal(t, "C", stored.Guests[1].Name)
	assert.NotEqual(t, uuid.Nil, stored.Guests[1].ID)
	assert.NotEqual(t, a.ID, stored.Guests[1].ID)
	assert.Equal(t, int64(2), e.guestCount(t))
}

func TestUpdateMissingSurchargeKeepsReservation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.create(t, roomID, day(5), day(10), models.Guest{Name: "A", Adult: true})

	_, err := e.manager.Update(ctx, r.ID, booking.UpdateRequest{
		Accommodation: day(6),
		Release:       day(8),
		Addons:        booking.Addons{Breakfast: true},
		Guests:        []models.Guest{{Name: "B", Adult: true}},
		ActorID:       ownerID,
	})
	require.ErrorIs(t, err, booking.ErrConfigurationMissing)

	stored, err := e.manager.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, stored.Accommodation.Equal(day(5)))
	assert.True(t, stored.Release.Equal(day(10)))
	assert.False(t, stored.Breakfast)
	assert.Equal(t, r.Price, stored.Price)
	assert.Equal(t, guestIDs(r.Guests), guestIDs(stored.Guests))
	assert.Equal(t, []string{"A"}, names(stored.Guests))
}

func TestGuestOfAnotherReservation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.create(t, roomID, day(1), day(3), models.Guest{Name: "A", Adult: true})
	b := e.create(t, roomID, day(5), day(7), models.Guest{Name: "B", Adult: true})
	stolen := a.Guests[0].ID

	_, err := e.manager.Update(ctx, b.ID, booking.UpdateRequest{
		Accommodation: day(5),
		Release:       day(7),
		Guests:        []models.Guest{{ID: stolen, Name: "Mallory", Adult: true}},
		ActorID:       ownerID,
	})
	require.ErrorIs(t, err, booking.ErrGuestConflict)

	_, err = e.manager.Create(ctx, booking.CreateRequest{
		RoomID: smallID, Accommodation: day(1), Release: day(2), OwnerID: otherID,
		Guests: []models.Guest{{ID: stolen, Name: "Mallory"}},
	})
	require.ErrorIs(t, err, booking.ErrGuestConflict)

	storedA, err := e.manager.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, storedA.Guests, 1)
	assert.Equal(t, stolen, storedA.Guests[0].ID)
	assert.Equal(t, "A", storedA.Guests[0].Name)

	storedB, err := e.manager.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, guestIDs(b.Guests), guestIDs(storedB.Guests))

	count, err := e.manager.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestUpdateAuthorizesBeforeAvailability(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.create(t, roomID, day(5), day(10))
	e.create(t, roomID, day(12), day(14))

	_, err := e.manager.Update(ctx, r.ID, booking.UpdateRequest{
		Accommodation: day(11), Release: day(13), ActorID: otherID,
	})
	require.ErrorIs(t, err, booking.ErrUnauthorized)
	require.NotErrorIs(t, err, booking.ErrSchedulingConflict)

	_, err = e.manager.Update(ctx, r.ID, booking.UpdateRequest{
		Accommodation: day(11), Release: day(13), ActorID: ownerID,
	})
	require.ErrorIs(t, err, booking.ErrSchedulingConflict)
}

func TestDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.create(t, roomID, day(5), day(10), models.Guest{Name: "A"}, models.Guest{Name: "B"})
	keep := e.create(t, roomID, day(10), day(12), models.Guest{Name: "C"})

	deleted, err := e.manager.Delete(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, deleted)
	require.Equal(t, int64(1), e.guestCount(t))

	deleted, err = e.manager.Delete(ctx, r.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = e.manager.Get(ctx, r.ID)
	require.ErrorIs(t, err, booking.ErrReservationNotFound)
	_, err = e.manager.Get(ctx, keep.ID)
	require.NoError(t, err)

	e.create(t, roomID, day(5), day(9))
}

func TestReads(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	first := e.create(t, roomID, day(1), day(9))
	second := e.create(t, smallID, day(3), day(4))
	third := e.create(t, roomID, day(10), day(11))
	_, err := e.manager.Create(ctx, booking.CreateRequest{
		RoomID: smallID, Accommodation: day(6), Release: day(7), OwnerID: otherID,
	})
	require.NoError(t, err)

	mine, err := e.manager.ForUser(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, []int64{third.ID, second.ID, first.ID}, ids(mine))

	all, err := e.manager.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, third.ID, all[3].ID)

	page, err := e.manager.AllPage(ctx, booking.Page{Number: 2, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{third.ID}, ids(page))

	count, err := e.manager.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	count, err = e.manager.CountForUser(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	type view struct {
		ID     int64
		Nights float64
	}
	views, err := booking.ListForUser(ctx, e.manager, ownerID, booking.Page{Number: 1, Size: 2},
		func(r *models.Reservation) view { return view{ID: r.ID, Nights: r.Nights()} })
	require.NoError(t, err)
	assert.Equal(t, []view{{third.ID, 1}, {second.ID, 1}}, views)

	nights, err := booking.GetAs(ctx, e.manager, first.ID, (*models.Reservation).Nights)
	require.NoError(t, err)
	assert.Equal(t, 8.0, nights)
}

func TestIsAvailable(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.create(t, roomID, day(5), day(10))

	ok, err := e.manager.IsAvailable(ctx, roomID, day(6), day(8), nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.manager.IsAvailable(ctx, roomID, day(6), day(8), &r.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.manager.IsAvailable(ctx, roomID, day(-1), day(1), nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConcurrentCreateSingleWinner(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.manager.Create(ctx, booking.CreateRequest{
				RoomID: roomID, Accommodation: day(3), Release: day(6), OwnerID: ownerID,
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		require.ErrorIs(t, err, booking.ErrSchedulingConflict)
	}
	require.Equal(t, 1, wins)
}

func TestConcurrentWritesKeepIntervalsDisjoint(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 24; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := day(i % 9)
			r, err := e.manager.Create(ctx, booking.CreateRequest{
				RoomID: roomID, Accommodation: start, Release: start.AddDate(0, 0, 1+i%3), OwnerID: ownerID,
			})
			if err != nil {
				return
			}
			if i%2 == 0 {
				shifted := start.AddDate(0, 0, 2)
				_, _ = e.manager.Update(ctx, r.ID, booking.UpdateRequest{
					Accommodation: shifted, Release: shifted.AddDate(0, 0, 2), ActorID: ownerID,
				})
			}
		}(i)
	}
	wg.Wait()

	all, err := e.manager.All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	for i := range all {
		for j := range all {
			if i == j {
				continue
			}
			a, b := all[i], all[j]
			overlap := a.Accommodation.Before(b.Release) && b.Accommodation.Before(a.Release)
			require.False(t, overlap, "reservations %d and %d overlap", a.ID, b.ID)
		}
	}
}

func TestLockWait(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	m := booking.NewManager(booking.Options{
		Store:    db.NewStore(e.gdb),
		Settings: db.NewSettingRepository(e.gdb),
		Locker:   e.locker,
		Now:      func() time.Time { return now },
		LockWait: 20 * time.Millisecond,
	})

	unlock, err := e.locker.Lock(ctx, roomID)
	require.NoError(t, err)
	_, err = m.Create(ctx, booking.CreateRequest{
		RoomID: roomID, Accommodation: day(1), Release: day(2), OwnerID: ownerID,
	})
	require.ErrorIs(t, err, booking.ErrLockUnavailable)
	require.False(t, errors.Is(err, booking.ErrSchedulingConflict))
	unlock()

	_, err = m.Create(ctx, booking.CreateRequest{
		RoomID: roomID, Accommodation: day(1), Release: day(2), OwnerID: ownerID,
	})
	require.NoError(t, err)
}

func names(guests []models.Guest) []string {
	out := make([]string, len(guests))
	for i, g := range guests {
		out[i] = g.Name
	}
	return out
}

func guestIDs(guests []models.Guest) []uuid.UUID {
	out := make([]uuid.UUID, len(guests))
	for i, g := range guests {
		out[i] = g.ID
	}
	return out
}

func ids(rs []models.Reservation) []int64 {
	return booking.Project(rs, func(r *models.Reservation) int64 { return r.ID })
}
