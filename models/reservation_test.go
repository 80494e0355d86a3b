package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationLifecycle(t *testing.T) {
	when := time.Now().Add(48 * time.Hour)
	res := NewReservation(1, 1, nil, when, 2)

	assert.Equal(t, ReservationStatusPending, res.Status)
	assert.NotEmpty(t, res.Code)
	assert.True(t, res.IsPending())
	assert.True(t, res.IsActive())

	// PENDING -> CONFIRMED -> COMPLETED adalah jalur terminal
	assert.NoError(t, res.Confirm())
	assert.Equal(t, ReservationStatusConfirmed, res.Status)
	assert.False(t, res.IsPending())
	assert.True(t, res.IsActive())

	assert.NoError(t, res.Complete())
	assert.Equal(t, ReservationStatusCompleted, res.Status)
	assert.False(t, res.IsActive())

	// Status terminal menolak semua transisi
	assert.ErrorIs(t, res.Confirm(), ErrInvalidTransition)
	assert.ErrorIs(t, res.Cancel(), ErrInvalidTransition)
	assert.ErrorIs(t, res.Complete(), ErrInvalidTransition)
}

func TestReservationConfirmOnlyFromPending(t *testing.T) {
	res := NewReservation(1, 1, nil, time.Now().Add(time.Hour), 2)
	assert.NoError(t, res.Confirm())

	// Konfirmasi kedua kalinya ditolak
	err := res.Confirm()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), "only pending reservations can be confirmed")
}

func TestReservationCancel(t *testing.T) {
	// CANCELLED bisa dicapai dari PENDING
	pending := NewReservation(1, 1, nil, time.Now().Add(time.Hour), 2)
	assert.NoError(t, pending.Cancel())
	assert.Equal(t, ReservationStatusCancelled, pending.Status)
	assert.False(t, pending.IsActive())

	// ... dan dari CONFIRMED
	confirmed := NewReservation(1, 1, nil, time.Now().Add(time.Hour), 2)
	assert.NoError(t, confirmed.Confirm())
	assert.NoError(t, confirmed.Cancel())

	// Tapi tidak dari CANCELLED
	assert.ErrorIs(t, confirmed.Cancel(), ErrInvalidTransition)
}

func TestReservationCompleteOnlyFromConfirmed(t *testing.T) {
	res := NewReservation(1, 1, nil, time.Now().Add(time.Hour), 2)
	assert.ErrorIs(t, res.Complete(), ErrInvalidTransition)
}

func TestReservationOccupies(t *testing.T) {
	when := time.Date(2026, 9, 7, 19, 0, 0, 0, time.Local)
	res := NewReservation(1, 1, nil, when, 2)

	// Window 0: hanya instant yang persis sama
	assert.True(t, res.Occupies(when, 0))
	assert.False(t, res.Occupies(when.Add(time.Minute), 0))

	// Window 2 jam: instant di dalam window bentrok
	assert.True(t, res.Occupies(when.Add(90*time.Minute), 2*time.Hour))
	assert.True(t, res.Occupies(when.Add(-90*time.Minute), 2*time.Hour))
	assert.False(t, res.Occupies(when.Add(2*time.Hour), 2*time.Hour))

	// Reservasi non-aktif tidak menempati kapasitas
	assert.NoError(t, res.Cancel())
	assert.False(t, res.Occupies(when, 0))
}
