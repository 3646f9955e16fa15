package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dzoniops/room-booking-service/models"
)

type guestState int

const (
	guestNew guestState = iota
	guestExisting
)

type taggedGuest struct {
	state guestState
	guest models.Guest
}

// rosterPlan is the difference between a persisted and a submitted roster.
type rosterPlan struct {
	inserts []models.Guest
	updates []models.Guest
	deletes []uuid.UUID
	roster  []models.Guest
	// claimed are caller supplied ids that are not on the persisted roster.
	claimed []uuid.UUID
}

func planRoster(reservationID int64, persisted, submitted []models.Guest) rosterPlan {
	known := make(map[uuid.UUID]struct{}, len(persisted))
	for _, g := range persisted {
		known[g.ID] = struct{}{}
	}

	tagged := make([]taggedGuest, 0, len(submitted))
	kept := make(map[uuid.UUID]struct{}, len(submitted))
	var claimed []uuid.UUID
	for i, g := range submitted {
		g.ReservationID = reservationID
		g.Position = i
		if _, ok := known[g.ID]; ok && g.ID != uuid.Nil {
			tagged = append(tagged, taggedGuest{state: guestExisting, guest: g})
			kept[g.ID] = struct{}{}
			continue
		}
		if g.ID == uuid.Nil {
			g.ID = uuid.New()
		} else {
			claimed = append(claimed, g.ID)
		}
		tagged = append(tagged, taggedGuest{state: guestNew, guest: g})
	}

	p := rosterPlan{claimed: claimed}
	for _, g := range persisted {
		if _, ok := kept[g.ID]; !ok {
			p.deletes = append(p.deletes, g.ID)
		}
	}
	p.roster = make([]models.Guest, 0, len(tagged))
	for _, t := range tagged {
		switch t.state {
		case guestNew:
			p.inserts = append(p.inserts, t.guest)
		case guestExisting:
			p.updates = append(p.updates, t.guest)
		}
		p.roster = append(p.roster, t.guest)
	}
	return p
}

// RosterSynchronizer reconciles a submitted guest list with the stored one.
type RosterSynchronizer struct{}

// Sync must run inside the transaction of the reservation change it belongs to.
// The submitted roster, with ids assigned, is returned as the new roster.
func (RosterSynchronizer) Sync(
	ctx context.Context,
	guests GuestStore,
	reservationID int64,
	submitted []models.Guest,
) ([]models.Guest, error) {
	persisted, err := guests.Guests(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("loading guests of reservation %d: %w", reservationID, err)
	}
	p := planRoster(reservationID, persisted, submitted)
	if err := checkClaims(ctx, guests, p); err != nil {
		return nil, err
	}
	if len(p.deletes) > 0 {
		if err := guests.Delete(ctx, p.deletes); err != nil {
			return nil, fmt.Errorf("removing guests: %w", err)
		}
	}
	if len(p.inserts) > 0 {
		if err := guests.Insert(ctx, p.inserts); err != nil {
			return nil, fmt.Errorf("adding guests: %w", err)
		}
	}
	if len(p.updates) > 0 {
		if err := guests.Update(ctx, p.updates); err != nil {
			return nil, fmt.Errorf("updating guests: %w", err)
		}
	}
	return p.roster, nil
}

// checkClaims rejects a roster that repeats a guest id or takes over a guest
// of another reservation.
func checkClaims(ctx context.Context, guests GuestStore, p rosterPlan) error {
	seen := make(map[uuid.UUID]struct{}, len(p.roster))
	for _, g := range p.roster {
		if _, ok := seen[g.ID]; ok {
			return fmt.Errorf("%w: %s is listed twice", ErrGuestConflict, g.ID)
		}
		seen[g.ID] = struct{}{}
	}
	if len(p.claimed) == 0 {
		return nil
	}
	taken, err := guests.Taken(ctx, p.claimed)
	if err != nil {
		return fmt.Errorf("checking guest ids: %w", err)
	}
	if len(taken) > 0 {
		return fmt.Errorf("%w: %s belongs to another reservation", ErrGuestConflict, taken[0])
	}
	return nil
}
