package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

type staticIntervals struct {
	IntervalStore
	intervals []Interval
	err       error
}

func (s staticIntervals) Intervals(context.Context, int64) ([]Interval, error) {
	return s.intervals, s.err
}

func TestConflicts(t *testing.T) {
	// stored interval is [day 10, day 15)
	s, e := day(10), day(15)
	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical", day(10), day(15), true},
		{"starts when stored ends", day(15), day(18), false},
		{"ends when stored starts", day(7), day(10), true},
		{"entirely before", day(1), day(5), false},
		{"entirely after", day(16), day(20), false},
		{"overlaps start", day(8), day(12), true},
		{"overlaps end", day(12), day(17), true},
		{"nested in stored", day(11), day(13), true},
		{"contains stored", day(9), day(16), true},
		{"shares start", day(10), day(12), true},
		{"shares end", day(12), day(15), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Conflicts(s, e, tt.start, tt.end))
		})
	}
}

func TestValidWindow(t *testing.T) {
	now := day(0).Add(15 * time.Hour)

	require.True(t, ValidWindow(day(0), day(1), now), "earlier today is still today")
	require.True(t, ValidWindow(day(3), day(4), now))
	require.False(t, ValidWindow(day(-1), day(1), now), "yesterday")
	require.False(t, ValidWindow(day(3), day(3), now), "empty")
	require.False(t, ValidWindow(day(4), day(3), now), "inverted")
}

func TestIsAvailable(t *testing.T) {
	now := func() time.Time { return day(0) }
	own := int64(7)
	store := staticIntervals{intervals: []Interval{
		{ReservationID: own, Start: day(10), End: day(15)},
		{ReservationID: 8, Start: day(20), End: day(22)},
	}}
	c := NewAvailabilityChecker(store, now)
	ctx := context.Background()

	ok, err := c.IsAvailable(ctx, 1, day(11), day(14), nil)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = c.IsAvailable(ctx, 1, day(11), day(14), &own)
	require.NoError(t, err)
	require.True(t, ok, "a reservation never conflicts with itself")

	ok, err = c.IsAvailable(ctx, 1, day(11), day(21), &own)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = c.IsAvailable(ctx, 1, day(15), day(20), nil)
	require.NoError(t, err)
	require.False(t, ok, "ending on the day the next stay begins conflicts")

	ok, err = c.IsAvailable(ctx, 1, day(15), day(19), nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.IsAvailable(ctx, 1, day(-2), day(-1), nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsAvailableStoreError(t *testing.T) {
	boom := errors.New("boom")
	c := NewAvailabilityChecker(staticIntervals{err: boom}, func() time.Time { return day(0) })

	_, err := c.IsAvailable(context.Background(), 1, day(1), day(2), nil)
	require.ErrorIs(t, err, boom)
}
