package models

import "time"

type Restaurant struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Address        string          `gorm:"type:varchar(255)" json:"address"`
	Phone          string          `gorm:"type:varchar(50)" json:"phone"`
	Capacity       int             `gorm:"not null;default:0" json:"capacity"`
	OperatingHours []OperatingHour `gorm:"foreignKey:RestaurantID" json:"operating_hours,omitempty"`
	Tables         []Table         `gorm:"foreignKey:RestaurantID" json:"tables,omitempty"`
	Reservations   []Reservation   `gorm:"foreignKey:RestaurantID" json:"reservations,omitempty"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// IsOpenAt melaporkan apakah restoran buka pada instant tersebut,
// berdasarkan jadwal operasional per hari.
func (r *Restaurant) IsOpenAt(when time.Time) bool {
	for i := range r.OperatingHours {
		if r.OperatingHours[i].Covers(when) {
			return true
		}
	}
	return false
}

// ActiveCoversAt menjumlahkan party size seluruh reservasi aktif
// (PENDING/CONFIRMED) yang jatuh pada window pemesanan yang sama.
func (r *Restaurant) ActiveCoversAt(when time.Time, window time.Duration) int {
	total := 0
	for i := range r.Reservations {
		if r.Reservations[i].Occupies(when, window) {
			total += r.Reservations[i].PartySize
		}
	}
	return total
}

// AddReservation menambahkan reservasi baru ke ledger restoran.
// Reservasi hanya boleh masuk lewat method ini, bukan lewat slice langsung.
func (r *Restaurant) AddReservation(res *Reservation) {
	res.RestaurantID = r.ID
	r.Reservations = append(r.Reservations, *res)
}

// FindTable mencari meja milik restoran berdasarkan ID.
func (r *Restaurant) FindTable(tableID uint) *Table {
	for i := range r.Tables {
		if r.Tables[i].ID == tableID {
			return &r.Tables[i]
		}
	}
	return nil
}
