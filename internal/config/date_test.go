package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBirthDate(t *testing.T) {
	want := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"1990-04-12",
		"19900412",
		"04/12/1990",
		"1990-04-12T23:30:00+09:00",
		"  1990-04-12 ",
	} {
		got, err := ParseBirthDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseBirthDate_Errors(t *testing.T) {
	_, err := ParseBirthDate("")
	assert.ErrorIs(t, err, ErrNoBirthDate)

	_, err = ParseBirthDate("1990-13-45")
	assert.Error(t, err)

	_, err = ParseBirthDate("yesterday")
	assert.Contains(t, err.Error(), "unrecognised birth date")
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("X", -5*3600)
	in := time.Date(2001, 2, 3, 22, 15, 0, 0, loc)

	assert.Equal(t, time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC), DateOnly(in))
}
