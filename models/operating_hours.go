package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidHours = errors.New("opening time must be before closing time")

// OperatingHour menyimpan jam buka/tutup restoran untuk satu hari.
// Hari yang tidak punya baris dianggap tutup sepanjang hari.
type OperatingHour struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_restaurant_weekday" json:"restaurant_id"`
	Weekday      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_restaurant_weekday" json:"weekday"`
	OpenTime     string    `gorm:"type:varchar(5);not null" json:"open_time"`
	CloseTime    string    `gorm:"type:varchar(5);not null" json:"close_time"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// NewOperatingHour memvalidasi pasangan jam buka/tutup ("HH:MM").
// open harus benar-benar sebelum close; open == close ditolak, bukan 24 jam.
func NewOperatingHour(restaurantID uint, weekday time.Weekday, openTime, closeTime string) (*OperatingHour, error) {
	openMin, err := minuteOfDay(openTime)
	if err != nil {
		return nil, err
	}
	closeMin, err := minuteOfDay(closeTime)
	if err != nil {
		return nil, err
	}
	if openMin >= closeMin {
		return nil, ErrInvalidHours
	}
	return &OperatingHour{
		RestaurantID: restaurantID,
		Weekday:      weekday.String(),
		OpenTime:     openTime,
		CloseTime:    closeTime,
	}, nil
}

// Covers melaporkan apakah instant tersebut jatuh pada hari dan interval
// jam buka baris ini. Batas buka dan tutup sama-sama inklusif.
func (oh *OperatingHour) Covers(when time.Time) bool {
	if oh.Weekday != when.Weekday().String() {
		return false
	}
	openMin, err := minuteOfDay(oh.OpenTime)
	if err != nil {
		return false
	}
	closeMin, err := minuteOfDay(oh.CloseTime)
	if err != nil {
		return false
	}
	minute := when.Hour()*60 + when.Minute()
	return minute >= openMin && minute <= closeMin
}

// ParseWeekday menerima nama hari ("Monday".."Sunday").
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %s", name)
}

func minuteOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
