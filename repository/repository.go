package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound dikembalikan semua repository saat record tidak ada,
// supaya layer service tidak perlu kenal error gorm.
var ErrNotFound = errors.New("not found")

// Store membungkus seluruh repository di atas satu koneksi (atau transaksi).
type Store struct {
	db           *gorm.DB
	Restaurants  RestaurantRepository
	Tables       TableRepository
	Reservations ReservationRepository
	Customers    CustomerRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Restaurants:  NewRestaurantRepository(db),
		Tables:       NewTableRepository(db),
		Reservations: NewReservationRepository(db),
		Customers:    NewCustomerRepository(db),
	}
}

// Atomic menjalankan fn dalam satu transaksi database. Jika fn mengembalikan
// error maka seluruh perubahan di-rollback.
func (s *Store) Atomic(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// translate memetakan gorm.ErrRecordNotFound ke ErrNotFound.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
