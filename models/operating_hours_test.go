package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOperatingHourValidation(t *testing.T) {
	// Pasangan valid
	hour, err := NewOperatingHour(1, time.Monday, "10:00", "22:00")
	assert.NoError(t, err)
	assert.Equal(t, "Monday", hour.Weekday)

	// open == close bukan berarti buka 24 jam, tapi konfigurasi tidak valid
	_, err = NewOperatingHour(1, time.Monday, "10:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidHours)

	// Jam terbalik
	_, err = NewOperatingHour(1, time.Monday, "22:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidHours)

	// Format jam rusak
	_, err = NewOperatingHour(1, time.Monday, "25:00", "26:00")
	assert.Error(t, err)
	_, err = NewOperatingHour(1, time.Monday, "ten", "22:00")
	assert.Error(t, err)
}

func TestOperatingHourCovers(t *testing.T) {
	hour, err := NewOperatingHour(1, time.Monday, "10:00", "22:00")
	assert.NoError(t, err)

	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local) // Senin
	assert.Equal(t, time.Monday, monday.Weekday())

	at := func(h, m int) time.Time {
		return time.Date(monday.Year(), monday.Month(), monday.Day(), h, m, 0, 0, time.Local)
	}

	// Batas buka dan tutup inklusif
	assert.True(t, hour.Covers(at(10, 0)))
	assert.True(t, hour.Covers(at(22, 0)))
	assert.True(t, hour.Covers(at(19, 30)))

	// Semenit sebelum buka / setelah tutup
	assert.False(t, hour.Covers(at(9, 59)))
	assert.False(t, hour.Covers(at(22, 1)))

	// Hari lain tidak tercakup meski jamnya sama
	tuesday := at(12, 0).AddDate(0, 0, 1)
	assert.False(t, hour.Covers(tuesday))
}

func TestRestaurantIsOpenAt(t *testing.T) {
	monday := time.Date(2026, 9, 7, 12, 0, 0, 0, time.Local)

	hour, err := NewOperatingHour(1, time.Monday, "10:00", "22:00")
	assert.NoError(t, err)

	restaurant := Restaurant{ID: 1, Capacity: 10, OperatingHours: []OperatingHour{*hour}}
	assert.True(t, restaurant.IsOpenAt(monday))

	// Hari tanpa konfigurasi dianggap tutup
	assert.False(t, restaurant.IsOpenAt(monday.AddDate(0, 0, 1)))

	// Restoran tanpa jadwal sama sekali valid tapi selalu tutup
	empty := Restaurant{ID: 2, Capacity: 10}
	assert.False(t, empty.IsOpenAt(monday))
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("Sunday")
	assert.NoError(t, err)
	assert.Equal(t, time.Sunday, day)

	_, err = ParseWeekday("Funday")
	assert.Error(t, err)
}
