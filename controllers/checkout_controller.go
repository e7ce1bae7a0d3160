package controllers

import (
	"net/http"
	"strings"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type CheckoutPayload struct {
	RoomID          uint   `json:"roomId" binding:"required"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

type CheckoutController struct {
	Checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: checkout}
}

func checkoutErrorStatus(err error) int {
	if services.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

// Submit handles POST /api/checkout. Demo mode answers with the confirmed
// booking and a redirect; real payments answer with the hosted payment URL
// and the reference to complete or abandon with.
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	var payload CheckoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all required fields"})
		return
	}

	guest := services.GuestInfo{
		FullName:        payload.FullName,
		Email:           payload.Email,
		Phone:           payload.Phone,
		SpecialRequests: payload.SpecialRequests,
	}

	result, err := ctrl.Checkout.Submit(c.Request.Context(), guest, payload.RoomID, payload.CheckInDate, payload.CheckOutDate)
	if err != nil {
		c.JSON(checkoutErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	if result.DemoMode {
		c.JSON(http.StatusOK, gin.H{
			"demo":        true,
			"booking":     result.Booking,
			"reference":   result.Reference,
			"redirectUrl": result.RedirectURL,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"demo":             false,
		"booking":          result.Booking,
		"reference":        result.Reference,
		"authorizationUrl": result.AuthorizationURL,
	})
}

// GatewaySuccess handles POST /api/checkout/:reference/success — the
// gateway's success callback relayed by the frontend.
func (ctrl *CheckoutController) GatewaySuccess(c *gin.Context) {
	reference := strings.TrimSpace(c.Param("reference"))
	result, err := ctrl.Checkout.CompleteGatewaySuccess(c.Request.Context(), reference)
	if err != nil {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":     result.Booking,
		"redirectUrl": result.RedirectURL,
	})
}

// GatewayClose handles POST /api/checkout/:reference/close — the user shut
// the payment window; submission is re-enabled, nothing is rolled back.
func (ctrl *CheckoutController) GatewayClose(c *gin.Context) {
	reference := strings.TrimSpace(c.Param("reference"))
	if err := ctrl.Checkout.Abandon(reference); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": true})
}

// Confirmation handles GET /api/checkout/:reference/confirmation, reading
// the booking saved at checkout completion.
func (ctrl *CheckoutController) Confirmation(c *gin.Context) {
	reference := strings.TrimSpace(c.Param("reference"))
	booking, ok := ctrl.Checkout.Confirmation(reference)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no completed checkout for this reference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
