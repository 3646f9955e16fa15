package booking

import (
	"context"

	"github.com/dzoniops/room-booking-service/models"
)

// Project maps stored reservations onto a caller-chosen view.
func Project[T any](in []models.Reservation, fn func(*models.Reservation) T) []T {
	out := make([]T, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

func GetAs[T any](ctx context.Context, m *Manager, id int64, fn func(*models.Reservation) T) (T, error) {
	r, err := m.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(r), nil
}

func ListForUser[T any](ctx context.Context, m *Manager, userID int64, page Page, fn func(*models.Reservation) T) ([]T, error) {
	rs, err := m.ForUserPage(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return Project(rs, fn), nil
}

func ListAll[T any](ctx context.Context, m *Manager, page Page, fn func(*models.Reservation) T) ([]T, error) {
	rs, err := m.AllPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return Project(rs, fn), nil
}
