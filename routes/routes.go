package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"resort-backend/controllers"
	"resort-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances into the public API surface.
func SetupRouter(
	rc *controllers.RoomController,
	ac *controllers.AvailabilityController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	cc *controllers.CheckoutController,
	ec *controllers.EmailController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoom)
		}

		api.POST("/availability-check", ac.CheckAvailability)

		bookings := api.Group("/bookings")
		{
			bookings.POST("/create", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
		}

		api.POST("/payments/verify/:reference", pc.VerifyPayment)

		checkout := api.Group("/checkout")
		{
			checkout.POST("", cc.Submit)
			checkout.POST("/:reference/success", cc.GatewaySuccess)
			checkout.POST("/:reference/close", cc.GatewayClose)
			checkout.GET("/:reference/confirmation", cc.Confirmation)
		}

		api.POST("/emails/send-confirmation", ec.SendConfirmation)

		api.GET("/settings/hotel", controllers.GetHotelSettings)
	}

	return r
}
