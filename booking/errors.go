package booking

import "errors"

var (
	ErrInvalidWindow        = errors.New("invalid reservation window")
	ErrResourceNotFound     = errors.New("room not found")
	ErrSchedulingConflict   = errors.New("room is not available for the selected dates")
	ErrCapacityExceeded     = errors.New("room capacity exceeded")
	ErrUnauthorized         = errors.New("not allowed to modify reservation")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrConfigurationMissing = errors.New("surcharge is not configured")
	ErrLockUnavailable      = errors.New("room lock unavailable")
	ErrGuestConflict        = errors.New("guest id is already in use")

	// ErrSettingNotConfigured is returned by a SettingsResolver for unknown keys.
	ErrSettingNotConfigured = errors.New("setting not configured")
)
