package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strconv"
	"strings"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// FormatNGN renders a whole-naira amount with thousands separators,
// e.g. 606000 -> "₦606,000".
func FormatNGN(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "₦" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// ConfirmationEmail is everything the booking-confirmation mail shows.
type ConfirmationEmail struct {
	To             string
	GuestName      string
	BookingRef     string
	RoomTitle      string
	CheckInDate    string
	CheckOutDate   string
	Nights         int
	NumberOfGuests int
	TotalAmount    int64
	HotelName      string
}

// SendBookingConfirmationEmail sends a multipart (plain + HTML) confirmation
// mail over SMTP. When SMTP env is not configured it logs a mock send and
// reports success, so development environments never block on mail.
func SendBookingConfirmationEmail(m ConfirmationEmail) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", m.HotelName)

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s booking:%s room:%s stay:%s→%s total:%s",
			m.To, m.BookingRef, m.RoomTitle, m.CheckInDate, m.CheckOutDate, FormatNGN(m.TotalAmount))
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}

	guestName := safe(m.GuestName)
	bookingRef := safe(m.BookingRef)
	roomTitle := safe(m.RoomTitle)
	total := FormatNGN(m.TotalAmount)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{m.To}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("Booking Confirmed — %s", bookingRef)
	boundary := "----=_RESORT_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your booking is confirmed. Here are your details:\n\n"+
			"Booking Reference: %s\n"+
			"Room: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Nights: %d\n"+
			"Guests: %d\n"+
			"Total Paid: %s\n\n"+
			"We look forward to welcoming you.\n\n"+
			"Best regards,\n%s",
		guestName, bookingRef, roomTitle,
		m.CheckInDate, m.CheckOutDate, m.Nights, m.NumberOfGuests, total,
		fromName,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking Confirmed</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:700px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.label { font-weight:700; width:160px; display:inline-block; vertical-align:top; }
.total { font-size:18px; font-weight:700; margin-top:16px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking Confirmed</h2>
    <p>Dear %s,</p>
    <p>Thank you for choosing %s. Your payment was received and your stay is confirmed.</p>

    <p><span class="label">Booking Reference:</span> %s</p>
    <p><span class="label">Room:</span> %s</p>
    <p><span class="label">Check-In:</span> %s</p>
    <p><span class="label">Check-Out:</span> %s</p>
    <p><span class="label">Nights:</span> %d</p>
    <p><span class="label">Guests:</span> %d</p>
    <p class="total">Total Paid: %s</p>

    <p>We look forward to welcoming you.</p>
    <p>Best regards,<br>%s</p>
  </div>
</div>
</body>
</html>`,
		htmlEscape(guestName), htmlEscape(fromName),
		htmlEscape(bookingRef), htmlEscape(roomTitle),
		m.CheckInDate, m.CheckOutDate, m.Nights, m.NumberOfGuests,
		htmlEscape(total), htmlEscape(fromName),
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", m.To))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("❌ Failed to send confirmation email to %s: %v", m.To, err)
		return err
	}

	log.Printf("📨 Confirmation email sent to %s (booking %s)", m.To, bookingRef)
	return nil
}

// minimal html escaper for the small strings we use
func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}
