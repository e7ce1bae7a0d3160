package services

import (
	"strings"
	"time"

	"resort-backend/models"

	"github.com/go-playground/validator/v10"
)

// GuestInfo is what the checkout form collects about the payer.
type GuestInfo struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,contains=@"`
	Phone           string `json:"phone" validate:"required"`
	SpecialRequests string `json:"specialRequests"`
}

// BookingDraft is the booking-creation request assembled from the selected
// room, the stay range and the guest form.
type BookingDraft struct {
	RoomID          uint   `json:"roomId"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	NumberOfGuests  int    `json:"numberOfGuests"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	TotalAmount     int64  `json:"totalAmount"`
}

// ValidationError is a user-correctable input problem; its message is shown
// as-is next to the form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

var guestValidate = validator.New()

// SplitGuestName splits a full name at the first space: everything before it
// is the first name, the remainder (spaces included) the last name. A name
// with no space yields an empty last name.
func SplitGuestName(full string) (firstName, lastName string) {
	full = strings.TrimSpace(full)
	if i := strings.Index(full, " "); i >= 0 {
		return full[:i], strings.TrimSpace(full[i+1:])
	}
	return full, ""
}

func guestValidationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "please fill in all required fields"
	}
	switch errs[0].Field() {
	case "FullName":
		return "please enter your full name"
	case "Email":
		return "please enter a valid email address"
	case "Phone":
		return "please enter your phone number"
	default:
		return "please fill in all required fields"
	}
}

// BuildBookingDraft validates the guest form against the selected room and
// stay range and assembles the booking-creation request. Guest count is
// fixed at one for now; the field is carried so the form can grow into it.
func BuildBookingDraft(guest GuestInfo, room *models.Room, checkIn, checkOut time.Time) (*BookingDraft, error) {
	guest.FullName = strings.TrimSpace(guest.FullName)
	guest.Email = strings.TrimSpace(guest.Email)
	guest.Phone = strings.TrimSpace(guest.Phone)

	if err := guestValidate.Struct(guest); err != nil {
		return nil, &ValidationError{Message: guestValidationMessage(err)}
	}

	nights := NightsBetween(checkIn, checkOut)
	if nights < 1 {
		return nil, &ValidationError{Message: "check-out date must be after check-in date"}
	}

	firstName, lastName := SplitGuestName(guest.FullName)

	return &BookingDraft{
		RoomID:          room.ID,
		CheckInDate:     checkIn.Format(ISODate),
		CheckOutDate:    checkOut.Format(ISODate),
		NumberOfGuests:  1,
		Email:           guest.Email,
		FirstName:       firstName,
		LastName:        lastName,
		Phone:           guest.Phone,
		SpecialRequests: strings.TrimSpace(guest.SpecialRequests),
		TotalAmount:     room.PriceNGN * int64(nights),
	}, nil
}
