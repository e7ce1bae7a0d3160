package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"resort-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "resort_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

func mustJSON(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Error marshalling seed data: %v", err)
	}
	return b
}

// SeedDatabase fills in the inventory and property settings when the tables
// are empty so a fresh install serves the public site immediately.
func SeedDatabase() {
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{
				Title:       "Classic Garden Room",
				Slug:        "classic-garden",
				Description: "Ground-floor room opening onto the palm garden, queen bed, rain shower.",
				PriceNGN:    148000,
				Capacity:    2,
				Images:      mustJSON([]string{"/images/rooms/classic-garden-1.jpg", "/images/rooms/classic-garden-2.jpg"}),
				Amenities:   mustJSON([]string{"King bed", "Garden view", "Air conditioning", "Breakfast included"}),
			},
			{
				Title:       "Deluxe Ocean View",
				Slug:        "deluxe-ocean-view",
				Description: "Corner room with a private balcony over the lagoon, king bed, workspace.",
				PriceNGN:    202000,
				Capacity:    2,
				Images:      mustJSON([]string{"/images/rooms/deluxe-ocean-1.jpg", "/images/rooms/deluxe-ocean-2.jpg"}),
				Amenities:   mustJSON([]string{"King bed", "Ocean view", "Balcony", "Minibar", "Breakfast included"}),
			},
			{
				Title:       "Family Suite",
				Slug:        "family-suite",
				Description: "Two-room suite with a living area, sleeps four, steps from the pool deck.",
				PriceNGN:    315000,
				Capacity:    4,
				Images:      mustJSON([]string{"/images/rooms/family-suite-1.jpg"}),
				Amenities:   mustJSON([]string{"Two bedrooms", "Living area", "Pool access", "Kitchenette"}),
			},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var settingCount int64
	DB.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HotelSetting{
			Name:    envOrDefault("HOTEL_NAME", "Bluewater Lagoon Resort"),
			Address: "14 Lagoon Drive, Victoria Island, Lagos",
			Phone:   "+234 800 000 0000",
			Email:   envOrDefault("HOTEL_EMAIL", "reservations@bluewaterlagoon.example"),
			Website: envOrDefault("FRONTEND_URL", "http://localhost:3000"),
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed hotel settings: %v", err)
		} else {
			log.Println("Hotel settings seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.HotelSetting{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
