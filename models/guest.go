package models

import (
	"github.com/google/uuid"
)

type Guest struct {
	ID            uuid.UUID `json:"id"             gorm:"type:varchar(36);primaryKey"`
	ReservationID int64     `json:"reservation_id" gorm:"index"`
	Name          string    `json:"name"`
	Adult         bool      `json:"adult"`
	Position      int       `json:"position"`
}

// Placeholder guests carry no name and are ignored for pricing and capacity.
func (g Guest) Placeholder() bool {
	return g.Name == ""
}
