package utils

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// Now is the clock used by the notpast rule.
var Now = time.Now

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("notpast", DateNotInPast)
}

// DateNotInPast accepts any time on or after the start of the current day.
func DateNotInPast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	y, m, d := Now().Date()
	return !t.Before(time.Date(y, m, d, 0, 0, 0, 0, Now().Location()))
}
