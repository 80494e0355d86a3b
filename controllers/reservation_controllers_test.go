package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dinebook/reservation-app/models"
	"github.com/dinebook/reservation-app/repository"
	"github.com/dinebook/reservation-app/services"
	"github.com/dinebook/reservation-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupReservationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Restaurant{},
		&models.OperatingHour{},
		&models.Table{},
		&models.Reservation{},
	))
	return db
}

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := repository.NewStore(db)
	availability := services.NewAvailabilityService(store, 0)
	bookings := services.NewBookingService(store, availability)

	reservationCtrl := NewReservationController(bookings)
	restaurantCtrl := NewRestaurantController(store, availability)

	router := gin.Default()
	router.POST("/reservations", reservationCtrl.CreateReservation)
	router.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	router.PATCH("/reservations/:reservation_id/cancel", reservationCtrl.CancelReservation)
	router.GET("/restaurants/:restaurant_id/availability", restaurantCtrl.CheckAvailability)
	return router
}

// seedReservationData membuat restoran (kapasitas 4, buka 10:00-22:00 pada
// hari dinnerTime) plus satu customer.
func seedReservationData(t *testing.T, db *gorm.DB) (models.Restaurant, models.Customer, time.Time) {
	next := time.Now().AddDate(0, 0, 7)
	dinnerTime := time.Date(next.Year(), next.Month(), next.Day(), 19, 0, 0, 0, time.Local)

	restaurant := models.Restaurant{Name: "Padang Raya", Capacity: 4}
	require.NoError(t, db.Create(&restaurant).Error)

	hour, err := models.NewOperatingHour(restaurant.ID, dinnerTime.Weekday(), "10:00", "22:00")
	require.NoError(t, err)
	require.NoError(t, db.Create(hour).Error)

	customer := models.Customer{Name: "Budi", Email: "budi@example.com"}
	require.NoError(t, db.Create(&customer).Error)

	return restaurant, customer, dinnerTime
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReservationEndpoint(t *testing.T) {
	db := setupReservationTestDB(t)
	restaurant, customer, dinnerTime := seedReservationData(t, db)
	router := setupReservationRouter(db)

	payload := map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"customer_id":   customer.ID,
		"reserved_at":   dinnerTime.Format(time.RFC3339),
		"party_size":    2,
	}
	w := postJSON(t, router, "/reservations", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Reservation created successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "PENDING", data["status"])
	assert.NotEmpty(t, data["code"])
}

func TestCreateReservationEndpointConflicts(t *testing.T) {
	db := setupReservationTestDB(t)
	restaurant, customer, dinnerTime := seedReservationData(t, db)
	router := setupReservationRouter(db)

	book := func(size int) *httptest.ResponseRecorder {
		return postJSON(t, router, "/reservations", map[string]interface{}{
			"restaurant_id": restaurant.ID,
			"customer_id":   customer.ID,
			"reserved_at":   dinnerTime.Format(time.RFC3339),
			"party_size":    size,
		})
	}

	// 2 + 2 muat di kapasitas 4
	assert.Equal(t, http.StatusCreated, book(2).Code)
	assert.Equal(t, http.StatusCreated, book(2).Code)

	// Satu orang lagi -> 409 kapasitas penuh
	w := book(1)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Di luar jam buka -> 409
	w = postJSON(t, router, "/reservations", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"customer_id":   customer.ID,
		"reserved_at":   dinnerTime.AddDate(0, 0, 1).Format(time.RFC3339),
		"party_size":    2,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Tanggal lampau -> 400
	w = postJSON(t, router, "/reservations", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"customer_id":   customer.ID,
		"reserved_at":   time.Now().Add(-24 * time.Hour).Format(time.RFC3339),
		"party_size":    2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelReservationEndpoint(t *testing.T) {
	db := setupReservationTestDB(t)
	restaurant, customer, dinnerTime := seedReservationData(t, db)
	router := setupReservationRouter(db)

	w := postJSON(t, router, "/reservations", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"customer_id":   customer.ID,
		"reserved_at":   dinnerTime.Format(time.RFC3339),
		"party_size":    2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	reservationID := uint(response["data"].(map[string]interface{})["id"].(float64))

	cancelURL := fmt.Sprintf("/reservations/%d/cancel", reservationID)
	cancel := func(customerID uint) *httptest.ResponseRecorder {
		body, err := json.Marshal(map[string]interface{}{"customer_id": customerID})
		require.NoError(t, err)
		req, err := http.NewRequest("PATCH", cancelURL, bytes.NewBuffer(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Bukan pemilik -> 403
	assert.Equal(t, http.StatusForbidden, cancel(customer.ID+1).Code)

	// Pemilik -> 200
	assert.Equal(t, http.StatusOK, cancel(customer.ID).Code)

	// Sudah dibatalkan -> 400
	assert.Equal(t, http.StatusBadRequest, cancel(customer.ID).Code)
}

func TestCheckAvailabilityEndpoint(t *testing.T) {
	db := setupReservationTestDB(t)
	restaurant, _, dinnerTime := seedReservationData(t, db)
	router := setupReservationRouter(db)

	table := models.Table{RestaurantID: restaurant.ID, TableNumber: "A1", Seats: 4}
	require.NoError(t, db.Create(&table).Error)

	get := func(url string) *httptest.ResponseRecorder {
		req, err := http.NewRequest("GET", url, nil)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	base := fmt.Sprintf("/restaurants/%d/availability", restaurant.ID)
	// Tanda + pada offset RFC3339 harus di-escape di query string
	date := url.QueryEscape(dinnerTime.Format(time.RFC3339))

	w := get(fmt.Sprintf("%s?date=%s&party_size=2", base, date))
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["available"])
	assert.NotNil(t, data["suggested_table"])

	// Hari tutup -> 409
	closed := url.QueryEscape(dinnerTime.AddDate(0, 0, 1).Format(time.RFC3339))
	w = get(fmt.Sprintf("%s?date=%s&party_size=2", base, closed))
	assert.Equal(t, http.StatusConflict, w.Code)

	// party_size wajib positif -> 400
	w = get(fmt.Sprintf("%s?date=%s&party_size=0", base, date))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Restoran tidak ada -> 404
	w = get(fmt.Sprintf("/restaurants/9999/availability?date=%s&party_size=2", date))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
