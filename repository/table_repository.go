package repository

import (
	"gorm.io/gorm"

	"github.com/dinebook/reservation-app/models"
)

type TableRepository interface {
	FindByID(id uint) (*models.Table, error)
	FindByRestaurantID(restaurantID uint) ([]models.Table, error)
	Save(table *models.Table) error
	DeleteByID(id uint) error
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) FindByID(id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.Preload("Reservations").First(&table, id).Error; err != nil {
		return nil, translate(err)
	}
	return &table, nil
}

func (r *tableRepository) FindByRestaurantID(restaurantID uint) ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.Where("restaurant_id = ?", restaurantID).Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *tableRepository) Save(table *models.Table) error {
	return r.db.Omit("Reservations").Save(table).Error
}

func (r *tableRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&models.Table{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
