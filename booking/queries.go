package booking

import (
	"context"

	"github.com/dzoniops/room-booking-service/models"
)

// Page is 1-based. A zero Size means no limit.
type Page struct {
	Number int
	Size   int
}

func (p Page) bounds() (offset, limit int) {
	if p.Size <= 0 {
		return 0, -1
	}
	n := p.Number
	if n < 1 {
		n = 1
	}
	return (n - 1) * p.Size, p.Size
}

func (m *Manager) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	return m.store.Reservations().Reservation(ctx, id)
}

// ForUser lists the reservations of a user, latest accommodation first.
func (m *Manager) ForUser(ctx context.Context, userID int64) ([]models.Reservation, error) {
	return m.ForUserPage(ctx, userID, Page{})
}

func (m *Manager) ForUserPage(ctx context.Context, userID int64, page Page) ([]models.Reservation, error) {
	offset, limit := page.bounds()
	return m.store.Reservations().ForOwner(ctx, userID, offset, limit)
}

// All lists every reservation, earliest release first.
func (m *Manager) All(ctx context.Context) ([]models.Reservation, error) {
	return m.AllPage(ctx, Page{})
}

func (m *Manager) AllPage(ctx context.Context, page Page) ([]models.Reservation, error) {
	offset, limit := page.bounds()
	return m.store.Reservations().All(ctx, offset, limit)
}

func (m *Manager) Count(ctx context.Context) (int64, error) {
	return m.store.Reservations().Count(ctx)
}

func (m *Manager) CountForUser(ctx context.Context, userID int64) (int64, error) {
	return m.store.Reservations().CountForOwner(ctx, userID)
}
