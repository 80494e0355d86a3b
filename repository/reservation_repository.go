package repository

import (
	"gorm.io/gorm"

	"github.com/dinebook/reservation-app/models"
)

type ReservationRepository interface {
	FindByID(id uint) (*models.Reservation, error)
	FindByCustomerID(customerID uint) ([]models.Reservation, error)
	FindByRestaurantID(restaurantID uint) ([]models.Reservation, error)
	Save(reservation *models.Reservation) error
	DeleteByID(id uint) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) FindByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.Preload("Table").Preload("Customer").First(&reservation, id).Error; err != nil {
		return nil, translate(err)
	}
	return &reservation, nil
}

func (r *reservationRepository) FindByCustomerID(customerID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Preload("Table").
		Where("customer_id = ?", customerID).
		Order("reserved_at DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) FindByRestaurantID(restaurantID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Preload("Table").Preload("Customer").
		Where("restaurant_id = ?", restaurantID).
		Order("reserved_at ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) Save(reservation *models.Reservation) error {
	return r.db.Omit("Table", "Customer").Save(reservation).Error
}

func (r *reservationRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
