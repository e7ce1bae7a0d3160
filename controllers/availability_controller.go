package controllers

import (
	"log"
	"net/http"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type AvailabilityCheckPayload struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

type AvailabilityController struct {
	Checker services.AvailabilityChecker
}

func NewAvailabilityController(checker services.AvailabilityChecker) *AvailabilityController {
	return &AvailabilityController{Checker: checker}
}

// CheckAvailability handles POST /api/availability-check. An indeterminate
// result (store error, degraded remote inventory) is reported as available:
// a broken availability subsystem must not block bookings.
func (ctrl *AvailabilityController) CheckAvailability(c *gin.Context) {
	var payload AvailabilityCheckPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomId, checkInDate and checkOutDate are required"})
		return
	}

	checkIn, err := services.ParseISODate(payload.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkInDate, expected yyyy-mm-dd"})
		return
	}
	checkOut, err := services.ParseISODate(payload.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkOutDate, expected yyyy-mm-dd"})
		return
	}
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkOutDate must be after checkInDate"})
		return
	}

	result := ctrl.Checker.CheckAvailability(c.Request.Context(), payload.RoomID, checkIn, checkOut)
	if result.State == services.AvailabilityIndeterminate {
		log.Printf("warning: availability check indeterminate for room %d, reporting available: %v",
			payload.RoomID, result.Err)
	}

	c.JSON(http.StatusOK, gin.H{"available": result.FailOpen()})
}
