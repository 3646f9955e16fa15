package models

const (
	SettingAllInclusivePrice = "AllInclusivePrice"
	SettingBreakfastPrice    = "BreakfastPrice"
)

type Setting struct {
	Key   string  `json:"key"   gorm:"column:name;primaryKey"`
	Value float64 `json:"value"`
}
