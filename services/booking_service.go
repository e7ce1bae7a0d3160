package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"resort-backend/models"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrTotalMismatch   = errors.New("total_amount_mismatch")
)

const mysqlDuplicateEntry = 1062

// BookingService owns the bookings table. Note that creation does not
// re-check availability: overlap control happens (fail-open) at the
// availability endpoint, and a retried submission after a failure simply
// produces a new booking row.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func newReferenceCode() string {
	return "RB-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString()[:13], "-", ""))
}

func isDuplicateKey(err error) bool {
	var me *mysqldrv.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

// CreateFromDraft persists a pending-payment booking. The total is
// recomputed from the room's current price and the draft is rejected when
// the client-supplied amount disagrees; client totals are not trusted.
func (s *BookingService) CreateFromDraft(draft *BookingDraft) (*models.Booking, error) {
	checkIn, err := ParseISODate(draft.CheckInDate)
	if err != nil {
		return nil, &ValidationError{Message: "invalid check-in date"}
	}
	checkOut, err := ParseISODate(draft.CheckOutDate)
	if err != nil {
		return nil, &ValidationError{Message: "invalid check-out date"}
	}

	nights := NightsBetween(checkIn, checkOut)
	if nights < 1 {
		return nil, &ValidationError{Message: "check-out date must be after check-in date"}
	}

	var room models.Room
	if err := s.DB.First(&room, draft.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("db error checking room %d: %w", draft.RoomID, err)
	}

	expected := room.PriceNGN * int64(nights)
	if draft.TotalAmount != expected {
		return nil, ErrTotalMismatch
	}

	guests := draft.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}

	booking := models.Booking{
		RoomID:            room.ID,
		Status:            models.BookingStatusPendingPayment,
		CheckInDate:       checkIn,
		CheckOutDate:      checkOut,
		Nights:            nights,
		NumberOfGuests:    guests,
		FirstName:         draft.FirstName,
		LastName:          draft.LastName,
		Email:             draft.Email,
		Phone:             draft.Phone,
		SpecialRequests:   draft.SpecialRequests,
		TotalAmount:       expected,
		PaystackReference: uuid.NewString(),
	}

	for attempt := 0; attempt < 3; attempt++ {
		booking.ReferenceCode = newReferenceCode()
		err = s.DB.Create(&booking).Error
		if err == nil {
			break
		}
		if isDuplicateKey(err) {
			continue
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create booking after retries: %w", err)
	}

	booking.Room = room
	return &booking, nil
}

// ConfirmByGatewayReference marks the booking behind a gateway reference as
// paid. Idempotent: confirming a confirmed booking is a no-op.
func (s *BookingService) ConfirmByGatewayReference(reference string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").Where("paystack_reference = ?", reference).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking for reference %s: %w", reference, err)
	}

	if booking.Status == models.BookingStatusConfirmed {
		return &booking, nil
	}

	now := time.Now().UTC()
	if err := s.DB.Model(&booking).Updates(map[string]interface{}{
		"status":  models.BookingStatusConfirmed,
		"paid_at": now,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to confirm booking %d: %w", booking.ID, err)
	}

	booking.Status = models.BookingStatusConfirmed
	booking.PaidAt = &now
	return &booking, nil
}

// GetBookingDetails loads a booking with its room.
func (s *BookingService) GetBookingDetails(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &booking, nil
}
