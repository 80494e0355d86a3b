package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinebook/reservation-app/models"
	"github.com/dinebook/reservation-app/repository"
	"github.com/dinebook/reservation-app/services"
	"github.com/dinebook/reservation-app/utils"
)

type CustomerController struct {
	Store *repository.Store
}

func NewCustomerController(store *repository.Store) *CustomerController {
	return &CustomerController{Store: store}
}

// CreateCustomer -> mendaftarkan customer baru
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if existing, err := cc.Store.Customers.FindByEmail(req.Email); err == nil && existing != nil {
		respondServiceError(c, fmt.Errorf("%w: email %s already registered", services.ErrConflict, req.Email))
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := cc.Store.Customers.Save(&customer); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New customer registered: %s", customer.Email)
	utils.RespondJSON(c, http.StatusCreated, "Customer created successfully", customer)
}

// GetAllCustomers -> menampilkan seluruh customer
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Store.Customers.FindAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// GetCustomerByID -> detail satu customer
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	customerID, ok := parseUintParam(c, "customer_id")
	if !ok {
		return
	}

	customer, err := cc.Store.Customers.FindByID(customerID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}
