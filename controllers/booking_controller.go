package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking handles POST /api/bookings/create: the collaborator
// endpoint the checkout flow (and any headless client) posts drafts to.
// Success always carries a booking object with an id; anything else is an
// error response.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var draft services.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking payload: " + err.Error()})
		return
	}

	booking, err := ctrl.BookingSvc.CreateFromDraft(&draft)
	if err != nil {
		switch {
		case services.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case errors.Is(err, services.ErrTotalMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "totalAmount does not match the room price for this stay"})
		default:
			log.Printf("CreateBooking error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":           booking,
		"paystackReference": booking.PaystackReference,
	})
}

// GetBookingDetails handles GET /api/bookings/:id.
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := ctrl.BookingSvc.GetBookingDetails(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("GetBookingDetails error for booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
