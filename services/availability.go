package services

import (
	"fmt"
	"time"

	"github.com/dinebook/reservation-app/models"
	"github.com/dinebook/reservation-app/repository"
)

// AvailabilityService memutuskan apakah sebuah permintaan reservasi bisa
// diterima, berdasarkan jadwal operasional dan ledger reservasi aktif.
type AvailabilityService struct {
	store *repository.Store

	// window menentukan lebar window pemesanan. Dua reservasi dianggap
	// bentrok kalau jaraknya kurang dari window; 0 berarti hanya instant
	// yang persis sama yang bentrok (perilaku default).
	window time.Duration
}

func NewAvailabilityService(store *repository.Store, window time.Duration) *AvailabilityService {
	return &AvailabilityService{store: store, window: window}
}

func (s *AvailabilityService) Window() time.Duration {
	return s.window
}

// Check memuat restoran (plus meja bila diminta) lalu menjalankan
// CheckSnapshot. Tidak ada mutasi apa pun, aman dipanggil berulang.
func (s *AvailabilityService) Check(restaurantID uint, when time.Time, partySize int, tableID *uint) error {
	_, err := s.CheckWithSuggestion(restaurantID, when, partySize, tableID)
	return err
}

// CheckWithSuggestion seperti Check, tapi juga memilihkan meja: meja yang
// diminta kalau lolos, atau meja bebas mana pun yang kursinya cukup.
// Meja nil dengan error nil berarti restoran bisa menampung tanpa meja
// spesifik yang cocok.
func (s *AvailabilityService) CheckWithSuggestion(restaurantID uint, when time.Time, partySize int, tableID *uint) (*models.Table, error) {
	restaurant, err := s.store.Restaurants.FindByIDForBooking(restaurantID)
	if err != nil {
		return nil, err
	}

	var table *models.Table
	if tableID != nil {
		table = restaurant.FindTable(*tableID)
		if table == nil {
			return nil, fmt.Errorf("%w: table %d", ErrNotFound, *tableID)
		}
	}

	if err := s.CheckSnapshot(restaurant, when, partySize, table); err != nil {
		return nil, err
	}
	if table != nil {
		return table, nil
	}
	return s.SuggestTable(restaurant, when, partySize), nil
}

// CheckSnapshot adalah fungsi murni atas snapshot restoran yang sudah dimuat:
//  1. kalender: restoran harus buka pada instant tersebut,
//  2. kapasitas: total party size reservasi aktif pada window yang sama
//     ditambah rombongan baru tidak boleh melebihi kapasitas restoran,
//  3. meja (bila diminta): kursi cukup dan belum dipegang reservasi aktif
//     pada window yang sama.
func (s *AvailabilityService) CheckSnapshot(restaurant *models.Restaurant, when time.Time, partySize int, table *models.Table) error {
	if !restaurant.IsOpenAt(when) {
		return fmt.Errorf("%w: %s %s", ErrOutsideOperatingHours, when.Weekday(), when.Format("15:04"))
	}

	if restaurant.ActiveCoversAt(when, s.window)+partySize > restaurant.Capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, restaurant.Capacity)
	}

	if table != nil {
		if !table.Fits(partySize) {
			return fmt.Errorf("%w: table %s seats %d", ErrTableUnavailable, table.TableNumber, table.Seats)
		}
		if table.IsBookedAt(when, s.window) {
			return fmt.Errorf("%w: table %s is already reserved", ErrTableUnavailable, table.TableNumber)
		}
	}

	return nil
}

// SuggestTable memilih meja mana pun yang kursinya cukup dan masih bebas
// pada window tersebut. Mengembalikan nil kalau tidak ada.
func (s *AvailabilityService) SuggestTable(restaurant *models.Restaurant, when time.Time, partySize int) *models.Table {
	for i := range restaurant.Tables {
		table := &restaurant.Tables[i]
		if table.Fits(partySize) && !table.IsBookedAt(when, s.window) {
			return table
		}
	}
	return nil
}
