package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dinebook/reservation-app/models"
	"github.com/dinebook/reservation-app/services"
	"github.com/dinebook/reservation-app/utils"
)

// respondServiceError memetakan jenis error domain ke status HTTP.
func respondServiceError(c *gin.Context, err error) {
	utils.RespondError(c, statusForError(err), err)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrOutsideOperatingHours),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrTableUnavailable),
		errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidRequest),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, models.ErrInvalidHours):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid "+name))
		return 0, false
	}
	return uint(value), true
}
