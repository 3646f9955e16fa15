package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dzoniops/room-booking-service/models"
)

// Addons are the two optional flat services of a stay. AllInclusive wins when
// both are set.
type Addons struct {
	AllInclusive bool
	Breakfast    bool
}

// Surcharges holds the resolved add-on prices for one calculation.
type Surcharges struct {
	AllInclusive float64
	Breakfast    float64
}

// ResolveSurcharges looks up only the surcharge the add-ons actually need.
func ResolveSurcharges(ctx context.Context, settings SettingsResolver, addons Addons) (Surcharges, error) {
	var s Surcharges
	switch {
	case addons.AllInclusive:
		v, err := lookupSurcharge(ctx, settings, models.SettingAllInclusivePrice)
		if err != nil {
			return s, err
		}
		s.AllInclusive = v
	case addons.Breakfast:
		v, err := lookupSurcharge(ctx, settings, models.SettingBreakfastPrice)
		if err != nil {
			return s, err
		}
		s.Breakfast = v
	}
	return s, nil
}

func lookupSurcharge(ctx context.Context, settings SettingsResolver, key string) (float64, error) {
	v, err := settings.Number(ctx, key)
	if errors.Is(err, ErrSettingNotConfigured) {
		return 0, fmt.Errorf("%w: %s", ErrConfigurationMissing, key)
	}
	if err != nil {
		return 0, fmt.Errorf("resolving %s: %w", key, err)
	}
	return v, nil
}

type PriceCalculator struct{}

// NightlyPrice charges every named guest at the adult or child rate and one
// extra adult for the booking owner, who is never listed as a guest.
func (PriceCalculator) NightlyPrice(room *models.Room, guests []models.Guest, addons Addons, s Surcharges) float64 {
	adults, children := 0, 0
	for _, g := range guests {
		if g.Placeholder() {
			continue
		}
		if g.Adult {
			adults++
		} else {
			children++
		}
	}
	price := float64(adults)*room.AdultPrice + float64(children)*room.ChildPrice + room.AdultPrice
	if addons.AllInclusive {
		price += s.AllInclusive
	} else if addons.Breakfast {
		price += s.Breakfast
	}
	return price
}

// StayPrice multiplies through fractional nights without rounding.
func (PriceCalculator) StayPrice(nightly float64, accommodation, release time.Time) float64 {
	return nightly * release.Sub(accommodation).Hours() / 24
}
