package booking

import (
	"context"
	"fmt"
	"time"
)

// AvailabilityChecker decides whether a window on a room is free.
type AvailabilityChecker struct {
	intervals IntervalStore
	now       func() time.Time
}

func NewAvailabilityChecker(intervals IntervalStore, now func() time.Time) *AvailabilityChecker {
	if now == nil {
		now = time.Now
	}
	return &AvailabilityChecker{intervals: intervals, now: now}
}

// IsAvailable reports false without an error for an empty, inverted or past
// window. exclude names a reservation whose own interval is ignored.
func (c *AvailabilityChecker) IsAvailable(
	ctx context.Context,
	roomID int64,
	start, end time.Time,
	exclude *int64,
) (bool, error) {
	if !ValidWindow(start, end, c.now()) {
		return false, nil
	}
	intervals, err := c.intervals.Intervals(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("loading intervals for room %d: %w", roomID, err)
	}
	for _, in := range intervals {
		if exclude != nil && in.ReservationID == *exclude {
			continue
		}
		if Conflicts(in.Start, in.End, start, end) {
			return false, nil
		}
	}
	return true, nil
}

// ValidWindow requires start < end and start not before the beginning of today.
func ValidWindow(start, end, now time.Time) bool {
	if !start.Before(end) {
		return false
	}
	return !start.Before(startOfDay(now))
}

// Conflicts reports whether the stored interval (s, e) collides with the
// candidate (start, end). A stored interval that ends exactly at start does not
// collide; one that begins exactly at end does. The last two clauses are kept
// even though the first two cover them.
func Conflicts(s, e, start, end time.Time) bool {
	switch {
	case !s.Before(start) && !s.After(end):
		return true
	case e.After(start) && !e.After(end):
		return true
	case !s.Before(start) && !e.After(end):
		return true
	case !s.After(start) && !e.Before(end):
		return true
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
