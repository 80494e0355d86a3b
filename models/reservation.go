package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status reservasi
const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusCancelled = "CANCELLED"
	ReservationStatusCompleted = "COMPLETED"
)

var ErrInvalidTransition = errors.New("invalid reservation status transition")

type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Code         string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	TableID      *uint     `gorm:"index" json:"table_id,omitempty"`
	Table        *Table    `gorm:"foreignKey:TableID" json:"table,omitempty"`
	CustomerID   uint      `gorm:"not null;index" json:"customer_id"`
	Customer     *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	PartySize    int       `gorm:"not null" json:"party_size"`
	ReservedAt   time.Time `gorm:"not null;index" json:"reserved_at"`
	Status       string    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// NewReservation membuat reservasi baru dengan status PENDING dan kode publik.
func NewReservation(restaurantID, customerID uint, tableID *uint, reservedAt time.Time, partySize int) *Reservation {
	return &Reservation{
		Code:         uuid.NewString(),
		RestaurantID: restaurantID,
		TableID:      tableID,
		CustomerID:   customerID,
		PartySize:    partySize,
		ReservedAt:   reservedAt,
		Status:       ReservationStatusPending,
	}
}

// Confirm -> PENDING ke CONFIRMED.
func (r *Reservation) Confirm() error {
	if r.Status != ReservationStatusPending {
		return fmt.Errorf("%w: only pending reservations can be confirmed (status=%s)", ErrInvalidTransition, r.Status)
	}
	r.Status = ReservationStatusConfirmed
	return nil
}

// Cancel -> PENDING/CONFIRMED ke CANCELLED. Status terminal tidak bisa dibatalkan.
func (r *Reservation) Cancel() error {
	if !r.IsActive() {
		return fmt.Errorf("%w: cannot cancel a %s reservation", ErrInvalidTransition, r.Status)
	}
	r.Status = ReservationStatusCancelled
	return nil
}

// Complete -> CONFIRMED ke COMPLETED.
func (r *Reservation) Complete() error {
	if r.Status != ReservationStatusConfirmed {
		return fmt.Errorf("%w: only confirmed reservations can be completed (status=%s)", ErrInvalidTransition, r.Status)
	}
	r.Status = ReservationStatusCompleted
	return nil
}

// IsPending melaporkan apakah reservasi masih menunggu konfirmasi.
func (r *Reservation) IsPending() bool {
	return r.Status == ReservationStatusPending
}

// IsActive melaporkan apakah reservasi masih menghitung kapasitas
// (PENDING atau CONFIRMED). Diturunkan dari status, tidak disimpan.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// Occupies melaporkan apakah reservasi aktif menempati window pemesanan
// di sekitar instant tersebut. Window 0 berarti kecocokan instant persis.
func (r *Reservation) Occupies(when time.Time, window time.Duration) bool {
	if !r.IsActive() {
		return false
	}
	if window <= 0 {
		return r.ReservedAt.Equal(when)
	}
	diff := r.ReservedAt.Sub(when)
	if diff < 0 {
		diff = -diff
	}
	return diff < window
}
