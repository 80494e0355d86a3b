package repository

import (
	"gorm.io/gorm"

	"github.com/dinebook/reservation-app/models"
)

type RestaurantRepository interface {
	FindByID(id uint) (*models.Restaurant, error)
	// FindByIDForBooking memuat restoran lengkap dengan jadwal operasional,
	// meja beserta reservasinya, dan ledger reservasi restoran.
	FindByIDForBooking(id uint) (*models.Restaurant, error)
	FindAll() ([]models.Restaurant, error)
	Save(restaurant *models.Restaurant) error
	ExistsByID(id uint) (bool, error)
	DeleteByID(id uint) error
	// SetHours mengganti konfigurasi jam buka restoran untuk satu hari.
	SetHours(hour *models.OperatingHour) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.Preload("OperatingHours").Preload("Tables").First(&restaurant, id).Error; err != nil {
		return nil, translate(err)
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindByIDForBooking(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.
		Preload("OperatingHours").
		Preload("Tables").
		Preload("Tables.Reservations").
		Preload("Reservations").
		First(&restaurant, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.Preload("OperatingHours").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) Save(restaurant *models.Restaurant) error {
	return r.db.Omit("Reservations", "Tables", "OperatingHours").Save(restaurant).Error
}

func (r *restaurantRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *restaurantRepository) SetHours(hour *models.OperatingHour) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("restaurant_id = ? AND weekday = ?", hour.RestaurantID, hour.Weekday).
			Delete(&models.OperatingHour{}).Error
		if err != nil {
			return err
		}
		return tx.Create(hour).Error
	})
}

func (r *restaurantRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&models.Restaurant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
