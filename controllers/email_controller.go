package controllers

import (
	"net/http"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type SendConfirmationPayload struct {
	BookingID      string                       `json:"bookingId" binding:"required"`
	Email          string                       `json:"email" binding:"required"`
	BookingDetails services.ConfirmationDetails `json:"bookingDetails" binding:"required"`
}

type EmailController struct {
	Dispatcher *services.EmailDispatcher
}

func NewEmailController(dispatcher *services.EmailDispatcher) *EmailController {
	return &EmailController{Dispatcher: dispatcher}
}

// SendConfirmation handles POST /api/emails/send-confirmation. The send is
// queued and the request acknowledged immediately; delivery failures are
// logged, never reported back.
func (ctrl *EmailController) SendConfirmation(c *gin.Context) {
	var payload SendConfirmationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookingId, email and bookingDetails are required"})
		return
	}

	ctrl.Dispatcher.DispatchDetails(payload.BookingID, payload.Email, payload.BookingDetails)
	c.JSON(http.StatusAccepted, gin.H{"queued": true})
}
