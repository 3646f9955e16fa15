package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzoniops/room-booking-service/models"
)

type mapSettings map[string]float64

func (m mapSettings) Number(_ context.Context, key string) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrSettingNotConfigured, key)
	}
	return v, nil
}

func TestNightlyPrice(t *testing.T) {
	room := &models.Room{AdultPrice: 100, ChildPrice: 50}
	guests := []models.Guest{
		{Name: "Ana", Adult: true},
		{Name: "Marko", Adult: true},
		{Name: "Mia"},
		{Adult: true},
	}
	var pc PriceCalculator

	assert.Equal(t, 350.0, pc.NightlyPrice(room, guests, Addons{}, Surcharges{}))
	assert.Equal(t, 390.0, pc.NightlyPrice(room, guests,
		Addons{AllInclusive: true}, Surcharges{AllInclusive: 40, Breakfast: 10}))
	assert.Equal(t, 360.0, pc.NightlyPrice(room, guests,
		Addons{Breakfast: true}, Surcharges{AllInclusive: 40, Breakfast: 10}))
	assert.Equal(t, 390.0, pc.NightlyPrice(room, guests,
		Addons{AllInclusive: true, Breakfast: true}, Surcharges{AllInclusive: 40, Breakfast: 10}),
		"all-inclusive replaces breakfast")
	assert.Equal(t, 100.0, pc.NightlyPrice(room, nil, Addons{}, Surcharges{}), "owner alone")
}

func TestStayPrice(t *testing.T) {
	var pc PriceCalculator

	assert.Equal(t, 1050.0, pc.StayPrice(350, day(1), day(4)))
	assert.Equal(t, 1170.0, pc.StayPrice(390, day(1), day(4)))
	assert.InDelta(t, 525.0, pc.StayPrice(350, day(1), day(2).Add(12*time.Hour)), 1e-9)
}

func TestResolveSurcharges(t *testing.T) {
	ctx := context.Background()
	settings := mapSettings{models.SettingAllInclusivePrice: 40}

	s, err := ResolveSurcharges(ctx, settings, Addons{AllInclusive: true, Breakfast: true})
	require.NoError(t, err)
	require.Equal(t, Surcharges{AllInclusive: 40}, s)

	s, err = ResolveSurcharges(ctx, settings, Addons{})
	require.NoError(t, err)
	require.Equal(t, Surcharges{}, s)

	_, err = ResolveSurcharges(ctx, settings, Addons{Breakfast: true})
	require.ErrorIs(t, err, ErrConfigurationMissing)
}
