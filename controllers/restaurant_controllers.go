package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dinebook/reservation-app/models"
	"github.com/dinebook/reservation-app/repository"
	"github.com/dinebook/reservation-app/services"
	"github.com/dinebook/reservation-app/utils"
)

type RestaurantController struct {
	Store        *repository.Store
	Availability *services.AvailabilityService
}

func NewRestaurantController(store *repository.Store, availability *services.AvailabilityService) *RestaurantController {
	return &RestaurantController{Store: store, Availability: availability}
}

// CreateRestaurant -> menambahkan restoran baru
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Address  string `json:"address"`
		Phone    string `json:"phone"`
		Capacity int    `json:"capacity" binding:"min=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Capacity: req.Capacity,
	}

	if err := rc.Store.Restaurants.Save(&restaurant); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New restaurant created: %s (capacity=%d)", restaurant.Name, restaurant.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created successfully", restaurant)
}

// GetAllRestaurants -> menampilkan seluruh restoran
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := rc.Store.Restaurants.FindAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantByID -> detail satu restoran beserta jadwal dan meja
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	restaurant, err := rc.Store.Restaurants.FindByID(restaurantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// UpdateRestaurant -> update profil/kapasitas restoran
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Address  *string `json:"address"`
		Phone    *string `json:"phone"`
		Capacity *int    `json:"capacity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant, err := rc.Store.Restaurants.FindByID(restaurantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("capacity cannot be negative"))
			return
		}
		restaurant.Capacity = *req.Capacity
	}

	if err := rc.Store.Restaurants.Save(restaurant); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

// DeleteRestaurant -> menghapus restoran (admin)
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	if err := rc.Store.Restaurants.DeleteByID(restaurantID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant %d deleted", restaurantID)
	utils.RespondJSON(c, http.StatusOK, "Restaurant deleted", gin.H{"id": restaurantID})
}

// SetOperatingHours -> mengatur jam buka satu hari.
// Pasangan jam yang terbalik atau sama ditolak.
func (rc *RestaurantController) SetOperatingHours(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	var req struct {
		Weekday   string `json:"weekday" binding:"required"`
		OpenTime  string `json:"open_time" binding:"required"`
		CloseTime string `json:"close_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	exists, err := rc.Store.Restaurants.ExistsByID(restaurantID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	weekday, err := models.ParseWeekday(req.Weekday)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hour, err := models.NewOperatingHour(restaurantID, weekday, req.OpenTime, req.CloseTime)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := rc.Store.Restaurants.SetHours(hour); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant %d hours set: %s %s-%s", restaurantID, hour.Weekday, hour.OpenTime, hour.CloseTime)
	utils.RespondJSON(c, http.StatusOK, "Operating hours updated", hour)
}

// CheckAvailability -> dry-run cek ketersediaan tanpa membuat reservasi
func (rc *RestaurantController) CheckAvailability(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	when, err := time.Parse(time.RFC3339, c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid or missing date (RFC3339)"))
		return
	}

	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil || partySize <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("party_size must be a positive integer"))
		return
	}

	var tableID *uint
	if raw := c.Query("table_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table_id"))
			return
		}
		id := uint(parsed)
		tableID = &id
	}

	table, err := rc.Availability.CheckWithSuggestion(restaurantID, when, partySize, tableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	data := gin.H{"available": true}
	if table != nil {
		data["suggested_table"] = table
	}
	utils.RespondJSON(c, http.StatusOK, "Time slot is available", data)
}
