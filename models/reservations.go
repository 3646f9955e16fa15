package models

import (
	"time"
)

type Reservation struct {
	ID            int64     `json:"id"             gorm:"primaryKey"`
	RoomID        int64     `json:"room_id"        gorm:"index"`
	Accommodation time.Time `json:"accommodation"  gorm:"column:accommodation_date;index"`
	Release       time.Time `json:"release"        gorm:"column:release_date;index"`
	AllInclusive  bool      `json:"all_inclusive"`
	Breakfast     bool      `json:"breakfast"`
	Price         float64   `json:"price"`
	OwnerID       int64     `json:"owner_id"       gorm:"index"`
	Guests        []Guest   `json:"guests"         gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Nights is fractional; a stay of 36 hours is 1.5 nights.
func (r *Reservation) Nights() float64 {
	return r.Release.Sub(r.Accommodation).Hours() / 24
}
