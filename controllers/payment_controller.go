package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Gateway    services.PaymentGateway
	BookingSvc *services.BookingService
}

func NewPaymentController(gateway services.PaymentGateway, bookings *services.BookingService) *PaymentController {
	return &PaymentController{Gateway: gateway, BookingSvc: bookings}
}

// VerifyPayment handles POST /api/payments/verify/:reference — 2xx only
// when the gateway confirms the transaction settled; the matching booking
// is then marked confirmed.
func (ctrl *PaymentController) VerifyPayment(c *gin.Context) {
	reference := strings.TrimSpace(c.Param("reference"))
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
		return
	}

	if err := ctrl.Gateway.VerifyTransaction(c.Request.Context(), reference); err != nil {
		log.Printf("VerifyPayment: verification failed for %s: %v", reference, err)
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment verification failed"})
		return
	}

	booking, err := ctrl.BookingSvc.ConfirmByGatewayReference(reference)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no booking for this reference"})
			return
		}
		log.Printf("VerifyPayment: confirm failed for %s: %v", reference, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified": true, "booking": booking})
}
