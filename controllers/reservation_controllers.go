package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dinebook/reservation-app/services"
	"github.com/dinebook/reservation-app/utils"
)

type ReservationController struct {
	Bookings *services.BookingService
}

func NewReservationController(bookings *services.BookingService) *ReservationController {
	return &ReservationController{Bookings: bookings}
}

// CreateReservation -> membuat reservasi baru (status awal PENDING)
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		RestaurantID uint      `json:"restaurant_id" binding:"required"`
		TableID      *uint     `json:"table_id"`
		CustomerID   uint      `json:"customer_id" binding:"required"`
		ReservedAt   time.Time `json:"reserved_at" binding:"required"`
		PartySize    int       `json:"party_size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Bookings.CreateReservation(services.CreateReservationInput{
		RestaurantID: req.RestaurantID,
		TableID:      req.TableID,
		CustomerID:   req.CustomerID,
		ReservedAt:   req.ReservedAt,
		PartySize:    req.PartySize,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// GetReservationByID -> detail satu reservasi
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservationID, ok := parseUintParam(c, "reservation_id")
	if !ok {
		return
	}

	reservation, err := rc.Bookings.Reservation(reservationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// ConfirmReservation -> PENDING ke CONFIRMED
func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	reservationID, ok := parseUintParam(c, "reservation_id")
	if !ok {
		return
	}

	reservation, err := rc.Bookings.ConfirmReservation(reservationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation confirmed", reservation)
}

// CompleteReservation -> CONFIRMED ke COMPLETED
func (rc *ReservationController) CompleteReservation(c *gin.Context) {
	reservationID, ok := parseUintParam(c, "reservation_id")
	if !ok {
		return
	}

	reservation, err := rc.Bookings.CompleteReservation(reservationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation completed", reservation)
}

// CancelReservation -> pembatalan oleh customer pemilik reservasi
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	reservationID, ok := parseUintParam(c, "reservation_id")
	if !ok {
		return
	}

	var req struct {
		CustomerID uint `json:"customer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Bookings.CancelReservation(reservationID, req.CustomerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", reservation)
}

// DeleteReservation -> hapus permanen (admin)
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	reservationID, ok := parseUintParam(c, "reservation_id")
	if !ok {
		return
	}

	if err := rc.Bookings.DeleteReservation(reservationID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"id": reservationID})
}

// GetReservationsByCustomer -> riwayat reservasi satu customer
func (rc *ReservationController) GetReservationsByCustomer(c *gin.Context) {
	customerID, ok := parseUintParam(c, "customer_id")
	if !ok {
		return
	}

	reservations, err := rc.Bookings.ReservationsByCustomer(customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationsByRestaurant -> seluruh reservasi satu restoran
func (rc *ReservationController) GetReservationsByRestaurant(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	reservations, err := rc.Bookings.ReservationsByRestaurant(restaurantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}
