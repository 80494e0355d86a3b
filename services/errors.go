package services

import (
	"errors"

	"github.com/dinebook/reservation-app/models"
	"github.com/dinebook/reservation-app/repository"
)

// Jenis error domain. Semua kondisi bisa dipulihkan oleh caller;
// layer transport memetakan tiap jenis ke status HTTP yang berbeda.
var (
	ErrNotFound              = repository.ErrNotFound
	ErrInvalidRequest        = errors.New("invalid request")
	ErrOutsideOperatingHours = errors.New("restaurant is closed at the requested time")
	ErrCapacityExceeded      = errors.New("restaurant capacity exceeded at the requested time")
	ErrTableUnavailable      = errors.New("table is not available at the requested time")
	ErrInvalidTransition     = models.ErrInvalidTransition
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
)
