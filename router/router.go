package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinebook/reservation-app/config"
	"github.com/dinebook/reservation-app/controllers"
	"github.com/dinebook/reservation-app/middlewares"
	"github.com/dinebook/reservation-app/repository"
	"github.com/dinebook/reservation-app/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddlewares())

	store := repository.NewStore(db)
	availability := services.NewAvailabilityService(store, config.ReservationWindow())
	bookings := services.NewBookingService(store, availability)

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(store, availability)
	tableCtrl := controllers.NewTableController(store)
	customerCtrl := controllers.NewCustomerController(store)
	reservationCtrl := controllers.NewReservationController(bookings)

	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// Endpoint publik untuk browsing dan booking
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	r.GET("/restaurants/:restaurant_id/availability", restaurantCtrl.CheckAvailability)
	r.GET("/restaurants/:restaurant_id/tables", tableCtrl.GetTablesByRestaurant)
	r.POST("/customers", customerCtrl.CreateCustomer)
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	r.PATCH("/reservations/:reservation_id/cancel", reservationCtrl.CancelReservation)
	r.GET("/customers/:customer_id/reservations", reservationCtrl.GetReservationsByCustomer)

	// Endpoint manajemen, wajib JWT
	manage := r.Group("/manage")
	manage.Use(middlewares.AuthMiddleware())
	{
		manage.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		manage.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)
		manage.PUT("/restaurants/:restaurant_id/hours", restaurantCtrl.SetOperatingHours)
		manage.DELETE("/restaurants/:restaurant_id", middlewares.RequireRole("admin"), restaurantCtrl.DeleteRestaurant)

		manage.POST("/restaurants/:restaurant_id/tables", tableCtrl.CreateTable)
		manage.GET("/tables/:table_id", tableCtrl.GetTableByID)
		manage.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		manage.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		manage.GET("/customers", customerCtrl.GetAllCustomers)
		manage.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)

		manage.GET("/restaurants/:restaurant_id/reservations", reservationCtrl.GetReservationsByRestaurant)
		manage.PATCH("/reservations/:reservation_id/confirm", reservationCtrl.ConfirmReservation)
		manage.PATCH("/reservations/:reservation_id/complete", reservationCtrl.CompleteReservation)
		manage.DELETE("/reservations/:reservation_id", middlewares.RequireRole("admin"), reservationCtrl.DeleteReservation)
	}

	return r
}
