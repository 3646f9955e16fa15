package db

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/dzoniops/room-booking-service/booking"
	"github.com/dzoniops/room-booking-service/models"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container in short mode")
	}
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "booking",
			"POSTGRES_PASSWORD": "booking",
			"POSTGRES_DB":       "booking",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	postgres, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = postgres.Terminate(ctx) })

	host, err := postgres.Host(ctx)
	require.NoError(t, err)
	dbPort, err := postgres.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)

	gdb, err := Open(Config{
		Driver: DriverPostgres,
		DSN:    PostgresDSN(host, dbPort.Port(), "booking", "booking", "booking"),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))
	return gdb
}

// Without the in-process lock only the row lock keeps writers apart.
type noLock struct{}

func (noLock) Lock(context.Context, int64) (func(), error) { return func() {}, nil }

func TestPostgresConcurrentCreate(t *testing.T) {
	gdb := startPostgres(t)
	ctx := context.Background()
	require.NoError(t, NewRoomRepository(gdb).Save(ctx, &models.Room{ID: 1, Name: "Lake", Capacity: 2, AdultPrice: 50}))

	now := at(0)
	manager := booking.NewManager(booking.Options{
		Store:    NewStore(gdb),
		Settings: NewSettingRepository(gdb),
		Roles:    NewUserRepository(gdb),
		Locker:   noLock{},
		Now:      func() time.Time { return now },
	})

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(owner int64) {
			defer wg.Done()
			_, err := manager.Create(ctx, booking.CreateRequest{
				RoomID:        1,
				Accommodation: at(2),
				Release:       at(4),
				OwnerID:       owner,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, booking.ErrSchedulingConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(int64(i + 1))
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, writers-1, conflicts)

	got, err := NewReservationRepository(gdb).All(ctx, 0, -1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 100.0, got[0].Price)
}
