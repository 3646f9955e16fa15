package models

// Room is read by the booking engine but owned by the room catalog.
type Room struct {
	ID         int64   `json:"id"          gorm:"primaryKey"`
	Name       string  `json:"name"`
	Capacity   int     `json:"capacity"`
	AdultPrice float64 `json:"adult_price"`
	ChildPrice float64 `json:"child_price"`
}
