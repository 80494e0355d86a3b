package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinebook/reservation-app/models"
	"github.com/dinebook/reservation-app/repository"
	"github.com/dinebook/reservation-app/utils"
)

type TableController struct {
	Store *repository.Store
}

func NewTableController(store *repository.Store) *TableController {
	return &TableController{Store: store}
}

// CreateTable -> menambahkan meja baru ke restoran
func (tc *TableController) CreateTable(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	var req struct {
		TableNumber string `json:"table_number" binding:"required"`
		Seats       int    `json:"seats" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	exists, err := tc.Store.Restaurants.ExistsByID(restaurantID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	table := models.Table{
		RestaurantID: restaurantID,
		TableNumber:  req.TableNumber,
		Seats:        req.Seats,
	}
	if err := tc.Store.Tables.Save(&table); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (restaurant=%d seats=%d)", table.TableNumber, restaurantID, table.Seats)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetTablesByRestaurant -> menampilkan seluruh meja satu restoran
func (tc *TableController) GetTablesByRestaurant(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	tables, err := tc.Store.Tables.FindByRestaurantID(restaurantID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID, ok := parseUintParam(c, "table_id")
	if !ok {
		return
	}

	table, err := tc.Store.Tables.FindByID(tableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> update nomor/kursi meja
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID, ok := parseUintParam(c, "table_id")
	if !ok {
		return
	}

	var req struct {
		TableNumber *string `json:"table_number"`
		Seats       *int    `json:"seats"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Store.Tables.FindByID(tableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if req.TableNumber != nil {
		table.TableNumber = *req.TableNumber
	}
	if req.Seats != nil {
		if *req.Seats <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("seats must be greater than zero"))
			return
		}
		table.Seats = *req.Seats
	}

	if err := tc.Store.Tables.Save(table); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> menghapus meja
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID, ok := parseUintParam(c, "table_id")
	if !ok {
		return
	}

	if err := tc.Store.Tables.DeleteByID(tableID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", tableID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": tableID})
}
