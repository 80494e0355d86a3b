package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/dinebook/reservation-app/models"
	"github.com/dinebook/reservation-app/repository"
	"github.com/dinebook/reservation-app/utils"
)

// BookingService adalah pintu masuk seluruh lifecycle reservasi:
// pembuatan, konfirmasi, penyelesaian, pembatalan, dan hapus administratif.
type BookingService struct {
	store        *repository.Store
	availability *AvailabilityService

	// Lock per restoran supaya cek ketersediaan dan insert berjalan
	// serial untuk restoran yang sama. Tanpa ini dua request bersamaan
	// bisa sama-sama lolos cek kapasitas sebelum salah satunya commit.
	locks   map[uint]*sync.Mutex
	locksMu sync.Mutex
}

func NewBookingService(store *repository.Store, availability *AvailabilityService) *BookingService {
	return &BookingService{
		store:        store,
		availability: availability,
		locks:        make(map[uint]*sync.Mutex),
	}
}

type CreateReservationInput struct {
	RestaurantID uint
	TableID      *uint
	CustomerID   uint
	ReservedAt   time.Time
	PartySize    int
}

// CreateReservation memvalidasi permintaan, menjalankan cek ketersediaan,
// lalu menyimpan reservasi PENDING dalam satu transaksi. Reservasi yang
// berhasil dibuat langsung terlihat oleh cek ketersediaan berikutnya.
func (s *BookingService) CreateReservation(input CreateReservationInput) (*models.Reservation, error) {
	if input.ReservedAt.IsZero() {
		return nil, fmt.Errorf("%w: reservation time is required", ErrInvalidRequest)
	}
	if input.ReservedAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: reservation date is in the past", ErrInvalidRequest)
	}
	if input.PartySize <= 0 {
		return nil, fmt.Errorf("%w: party size must be greater than zero", ErrInvalidRequest)
	}

	lock := s.restaurantLock(input.RestaurantID)
	lock.Lock()
	defer lock.Unlock()

	var reservation *models.Reservation
	err := s.store.Atomic(func(tx *repository.Store) error {
		restaurant, err := tx.Restaurants.FindByIDForBooking(input.RestaurantID)
		if err != nil {
			return err
		}

		if _, err := tx.Customers.FindByID(input.CustomerID); err != nil {
			return fmt.Errorf("customer %d: %w", input.CustomerID, err)
		}

		var table *models.Table
		if input.TableID != nil {
			stored, err := tx.Tables.FindByID(*input.TableID)
			if err != nil {
				return fmt.Errorf("table %d: %w", *input.TableID, err)
			}
			if stored.RestaurantID != restaurant.ID {
				return fmt.Errorf("%w: table %d does not belong to restaurant %d", ErrInvalidRequest, stored.ID, restaurant.ID)
			}
			// Pakai snapshot hasil preload supaya cek meja melihat
			// ledger yang sama dengan cek kapasitas.
			table = restaurant.FindTable(*input.TableID)
		}

		if err := s.availability.CheckSnapshot(restaurant, input.ReservedAt, input.PartySize, table); err != nil {
			return err
		}

		reservation = models.NewReservation(restaurant.ID, input.CustomerID, input.TableID, input.ReservedAt, input.PartySize)
		restaurant.AddReservation(reservation)

		if err := tx.Reservations.Save(reservation); err != nil {
			return err
		}
		return tx.Restaurants.Save(restaurant)
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s created: restaurant=%d party=%d at %s",
		reservation.Code, reservation.RestaurantID, reservation.PartySize, reservation.ReservedAt.Format(time.RFC3339))
	return reservation, nil
}

// CancelReservation membatalkan reservasi milik customer yang meminta.
// Reservasi yang sudah lewat waktunya atau sudah CANCELLED ditolak.
func (s *BookingService) CancelReservation(reservationID, requestingCustomerID uint) (*models.Reservation, error) {
	reservation, err := s.store.Reservations.FindByID(reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.CustomerID != requestingCustomerID {
		return nil, fmt.Errorf("%w: reservation belongs to another customer", ErrForbidden)
	}
	if reservation.ReservedAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: past reservations cannot be cancelled", ErrInvalidRequest)
	}
	if reservation.Status == models.ReservationStatusCancelled {
		return nil, fmt.Errorf("%w: reservation already cancelled", ErrInvalidRequest)
	}

	if err := reservation.Cancel(); err != nil {
		return nil, err
	}
	if err := s.store.Reservations.Save(reservation); err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s cancelled by customer %d", reservation.Code, requestingCustomerID)
	return reservation, nil
}

// ConfirmReservation menerapkan transisi PENDING -> CONFIRMED.
func (s *BookingService) ConfirmReservation(reservationID uint) (*models.Reservation, error) {
	return s.transition(reservationID, (*models.Reservation).Confirm)
}

// CompleteReservation menerapkan transisi CONFIRMED -> COMPLETED.
func (s *BookingService) CompleteReservation(reservationID uint) (*models.Reservation, error) {
	return s.transition(reservationID, (*models.Reservation).Complete)
}

// DeleteReservation menghapus baris reservasi secara permanen.
// Hanya untuk flow administratif; pembatalan normal cukup ubah status.
func (s *BookingService) DeleteReservation(reservationID uint) error {
	if err := s.store.Reservations.DeleteByID(reservationID); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Reservation %d deleted", reservationID)
	return nil
}

func (s *BookingService) Reservation(reservationID uint) (*models.Reservation, error) {
	return s.store.Reservations.FindByID(reservationID)
}

func (s *BookingService) ReservationsByCustomer(customerID uint) ([]models.Reservation, error) {
	return s.store.Reservations.FindByCustomerID(customerID)
}

func (s *BookingService) ReservationsByRestaurant(restaurantID uint) ([]models.Reservation, error) {
	return s.store.Reservations.FindByRestaurantID(restaurantID)
}

func (s *BookingService) transition(reservationID uint, apply func(*models.Reservation) error) (*models.Reservation, error) {
	reservation, err := s.store.Reservations.FindByID(reservationID)
	if err != nil {
		return nil, err
	}
	if err := apply(reservation); err != nil {
		return nil, err
	}
	if err := s.store.Reservations.Save(reservation); err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Reservation %s -> %s", reservation.Code, reservation.Status)
	return reservation, nil
}

func (s *BookingService) restaurantLock(restaurantID uint) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, exists := s.locks[restaurantID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[restaurantID] = lock
	}
	return lock
}
