package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. A booking is created as pending_payment by the act of
// calling the create endpoint and becomes confirmed only after payment
// verification (or the demo-mode simulation). Abandoned real-payment
// attempts stay pending_payment; nothing cancels them.
const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusConfirmed      = "confirmed"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID        uint   `gorm:"index;column:room_id" json:"roomId"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	Status        string `gorm:"column:status;size:32" json:"status"`

	CheckInDate    time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate   time.Time `gorm:"column:check_out_date" json:"checkOutDate"`
	Nights         int       `gorm:"column:nights" json:"nights"`
	NumberOfGuests int       `gorm:"column:number_of_guests" json:"numberOfGuests"`

	FirstName       string `gorm:"size:100" json:"firstName"`
	LastName        string `gorm:"size:100" json:"lastName"`
	Email           string `gorm:"size:191" json:"email"`
	Phone           string `gorm:"size:32" json:"phone"`
	SpecialRequests string `gorm:"type:text" json:"specialRequests,omitempty"`

	// Whole naira, nights * room.price_ngn. The gateway is paid this * 100.
	TotalAmount int64 `gorm:"column:total_amount" json:"totalAmount"`

	PaystackReference string     `gorm:"column:paystack_reference;size:64;index" json:"paystackReference,omitempty"`
	PaidAt            *time.Time `gorm:"column:paid_at" json:"paidAt,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
