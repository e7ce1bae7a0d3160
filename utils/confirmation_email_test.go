package utils

import "testing"

func TestFormatNGN(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "₦0"},
		{950, "₦950"},
		{202000, "₦202,000"},
		{606000, "₦606,000"},
		{1250000, "₦1,250,000"},
		{-404000, "-₦404,000"},
	}
	for _, tc := range cases {
		if got := FormatNGN(tc.amount); got != tc.want {
			t.Errorf("FormatNGN(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("RESORT_TEST_KEY", "")
	if got := EnvOrDefault("RESORT_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("empty env must yield the default, got %q", got)
	}
	t.Setenv("RESORT_TEST_KEY", "set")
	if got := EnvOrDefault("RESORT_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("set env must win, got %q", got)
	}
}

func TestSendBookingConfirmationEmailMockWithoutSMTP(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_USERNAME", "")
	t.Setenv("SMTP_PASSWORD", "")

	err := SendBookingConfirmationEmail(ConfirmationEmail{
		To:           "ada@example.com",
		GuestName:    "Ada",
		BookingRef:   "RB-0001",
		RoomTitle:    "Deluxe Ocean View",
		CheckInDate:  "2025-04-10",
		CheckOutDate: "2025-04-12",
		Nights:       2,
		TotalAmount:  404000,
		HotelName:    "Bluewater Lagoon Resort",
	})
	if err != nil {
		t.Fatalf("mock send must report success, got %v", err)
	}
}
