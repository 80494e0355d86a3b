package models

import "time"

type Table struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	RestaurantID uint          `gorm:"not null;index" json:"restaurant_id"`
	TableNumber  string        `gorm:"type:varchar(50);not null" json:"table_number"`
	Seats        int           `gorm:"not null" json:"seats"`
	Reservations []Reservation `gorm:"foreignKey:TableID" json:"reservations,omitempty"`
	CreatedAt    time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null" json:"updated_at"`
}

// Fits melaporkan apakah jumlah kursi meja cukup untuk rombongan.
func (t *Table) Fits(partySize int) bool {
	return t.Seats >= partySize
}

// IsBookedAt melaporkan apakah meja sudah dipegang reservasi aktif
// pada window pemesanan yang sama. Ketersediaan tiap window independen.
func (t *Table) IsBookedAt(when time.Time, window time.Duration) bool {
	for i := range t.Reservations {
		if t.Reservations[i].Occupies(when, window) {
			return true
		}
	}
	return false
}
