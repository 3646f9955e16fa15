package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type window struct {
	From time.Time `validate:"required,notpast"`
	To   time.Time `validate:"required,gtfield=From"`
}

func TestDateNotInPast(t *testing.T) {
	InitValidator()
	prev := Now
	Now = func() time.Time { return time.Date(2030, time.June, 1, 15, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { Now = prev })

	morning := time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, Validate.Struct(window{From: morning, To: morning.Add(time.Hour)}))

	yesterday := morning.Add(-time.Second)
	assert.Error(t, Validate.Struct(window{From: yesterday, To: morning}))

	err := Validate.Struct(window{From: morning.Add(time.Hour), To: morning})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gtfield")
}
