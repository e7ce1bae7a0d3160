package services

import (
	"testing"

	"resort-backend/models"
)

func testRoom(price int64) *models.Room {
	room := &models.Room{Title: "Deluxe Ocean View", PriceNGN: price, Capacity: 2}
	room.ID = 7
	return room
}

func validGuest() GuestInfo {
	return GuestInfo{
		FullName: "Ada Lovelace Byron",
		Email:    "ada@example.com",
		Phone:    "+2348000000000",
	}
}

func TestSplitGuestName(t *testing.T) {
	cases := []struct {
		full, first, last string
	}{
		{"Ada Lovelace Byron", "Ada", "Lovelace Byron"},
		{"Ada", "Ada", ""},
		{"  Ada Lovelace  ", "Ada", "Lovelace"},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := SplitGuestName(tc.full)
		if first != tc.first || last != tc.last {
			t.Errorf("SplitGuestName(%q) = %q, %q; want %q, %q", tc.full, first, last, tc.first, tc.last)
		}
	}
}

func TestBuildBookingDraftTotals(t *testing.T) {
	draft, err := BuildBookingDraft(validGuest(), testRoom(202000), day("2025-04-10"), day("2025-04-13"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.TotalAmount != 606000 {
		t.Fatalf("expected total 606000, got %d", draft.TotalAmount)
	}
	if draft.NumberOfGuests != 1 {
		t.Fatalf("guest count is fixed at 1, got %d", draft.NumberOfGuests)
	}
	if draft.FirstName != "Ada" || draft.LastName != "Lovelace Byron" {
		t.Fatalf("unexpected name split %q / %q", draft.FirstName, draft.LastName)
	}
	if draft.CheckInDate != "2025-04-10" || draft.CheckOutDate != "2025-04-13" {
		t.Fatalf("unexpected dates %s → %s", draft.CheckInDate, draft.CheckOutDate)
	}
}

func TestBuildBookingDraftRequiresFields(t *testing.T) {
	cases := []struct {
		name  string
		guest GuestInfo
	}{
		{"missing name", GuestInfo{Email: "a@b.c", Phone: "1"}},
		{"missing email", GuestInfo{FullName: "Ada", Phone: "1"}},
		{"email without at-sign", GuestInfo{FullName: "Ada", Email: "not-an-email", Phone: "1"}},
		{"missing phone", GuestInfo{FullName: "Ada", Email: "a@b.c"}},
		{"whitespace name", GuestInfo{FullName: "   ", Email: "a@b.c", Phone: "1"}},
	}
	for _, tc := range cases {
		_, err := BuildBookingDraft(tc.guest, testRoom(100000), day("2025-04-10"), day("2025-04-12"))
		if !IsValidationError(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestBuildBookingDraftRejectsEmptyStay(t *testing.T) {
	_, err := BuildBookingDraft(validGuest(), testRoom(100000), day("2025-04-12"), day("2025-04-12"))
	if !IsValidationError(err) {
		t.Fatalf("same-day stay must be rejected, got %v", err)
	}
	_, err = BuildBookingDraft(validGuest(), testRoom(100000), day("2025-04-12"), day("2025-04-10"))
	if !IsValidationError(err) {
		t.Fatalf("inverted stay must be rejected, got %v", err)
	}
}
