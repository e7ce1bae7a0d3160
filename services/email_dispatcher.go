package services

import (
	"log"
	"sync"

	"resort-backend/models"
	"resort-backend/utils"

	"gorm.io/gorm"
)

// ConfirmationMailer is the fire-and-forget side of checkout: dispatch must
// never block or fail the success path.
type ConfirmationMailer interface {
	DispatchConfirmation(booking *models.Booking)
}

// EmailDispatcher sends booking-confirmation mail in the background.
// Failures are logged and dropped; there is no retry queue.
type EmailDispatcher struct {
	DB *gorm.DB

	// wg lets tests wait for in-flight sends; callers never do.
	wg sync.WaitGroup
}

func NewEmailDispatcher(db *gorm.DB) *EmailDispatcher {
	return &EmailDispatcher{DB: db}
}

func (d *EmailDispatcher) hotelName() string {
	name := utils.EnvOrDefault("HOTEL_NAME", "")
	if name != "" || d.DB == nil {
		if name == "" {
			name = "Bluewater Lagoon Resort"
		}
		return name
	}
	var setting models.HotelSetting
	if err := d.DB.First(&setting).Error; err == nil && setting.Name != "" {
		return setting.Name
	}
	return "Bluewater Lagoon Resort"
}

// DispatchConfirmation fires the confirmation mail for a completed checkout
// and returns immediately.
func (d *EmailDispatcher) DispatchConfirmation(booking *models.Booking) {
	msg := utils.ConfirmationEmail{
		To:             booking.Email,
		GuestName:      booking.FirstName,
		BookingRef:     booking.ReferenceCode,
		RoomTitle:      booking.Room.Title,
		CheckInDate:    booking.CheckInDate.Format(ISODate),
		CheckOutDate:   booking.CheckOutDate.Format(ISODate),
		Nights:         booking.Nights,
		NumberOfGuests: booking.NumberOfGuests,
		TotalAmount:    booking.TotalAmount,
		HotelName:      d.hotelName(),
	}
	d.send(msg)
}

// ConfirmationDetails is the payload of the send-confirmation endpoint.
type ConfirmationDetails struct {
	ID             uint   `json:"id"`
	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	RoomTitle      string `json:"roomTitle"`
	TotalAmount    int64  `json:"totalAmount"`
	NumberOfGuests int    `json:"numberOfGuests"`
}

// DispatchDetails serves clients that post booking details directly.
func (d *EmailDispatcher) DispatchDetails(bookingRef, email string, details ConfirmationDetails) {
	in, errIn := ParseISODate(details.CheckInDate)
	out, errOut := ParseISODate(details.CheckOutDate)
	nights := 0
	if errIn == nil && errOut == nil {
		nights = NightsBetween(in, out)
	}
	d.send(utils.ConfirmationEmail{
		To:             email,
		BookingRef:     bookingRef,
		RoomTitle:      details.RoomTitle,
		CheckInDate:    details.CheckInDate,
		CheckOutDate:   details.CheckOutDate,
		Nights:         nights,
		NumberOfGuests: details.NumberOfGuests,
		TotalAmount:    details.TotalAmount,
		HotelName:      d.hotelName(),
	})
}

func (d *EmailDispatcher) send(msg utils.ConfirmationEmail) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := utils.SendBookingConfirmationEmail(msg); err != nil {
			log.Printf("warning: confirmation email for booking %s failed: %v", msg.BookingRef, err)
		}
	}()
}

// Wait blocks until queued sends finish. Test helper.
func (d *EmailDispatcher) Wait() {
	d.wg.Wait()
}
