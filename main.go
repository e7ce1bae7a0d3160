package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"resort-backend/config"
	"resort-backend/controllers"
	"resort-backend/routes"
	"resort-backend/services"
	"resort-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	paystackCfg := config.LoadPaystack()
	if paystackCfg.DemoMode() {
		log.Println("⚠️  No usable Paystack public key configured; checkout runs in demo mode (payments are simulated)")
	} else {
		log.Println("✅ Paystack key detected; checkout uses the live gateway")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	frontendURL := utils.EnvOrDefault("FRONTEND_URL", "http://localhost:3000")

	// Initialize services
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	dispatcher := services.NewEmailDispatcher(db)
	gateway := services.NewPaystackClient(paystackCfg)
	sessions := services.NewSessionStore(30 * time.Minute)

	// Availability answers from the local store unless a remote inventory
	// system is configured.
	var checker services.AvailabilityChecker = services.NewStoreAvailabilityService(db)
	if inventoryURL := os.Getenv("INVENTORY_URL"); inventoryURL != "" {
		log.Printf("Using remote inventory at %s for availability checks", inventoryURL)
		checker = services.NewRemoteAvailabilityChecker(inventoryURL)
	}

	checkoutService := services.NewCheckoutService(
		roomService, bookingService, gateway, dispatcher, sessions, paystackCfg, frontendURL,
	)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	availabilityController := controllers.NewAvailabilityController(checker)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(gateway, bookingService)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	emailController := controllers.NewEmailController(dispatcher)

	router := routes.SetupRouter(
		roomController,
		availabilityController,
		bookingController,
		paymentController,
		checkoutController,
		emailController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
