package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"resort-backend/config"
	"resort-backend/models"
)

// Checkout attempt states.
const (
	CheckoutStateIdle            = "idle"
	CheckoutStateSubmitting      = "submitting"
	CheckoutStateBookingCreated  = "booking_created"
	CheckoutStateDemoConfirming  = "demo_confirming"
	CheckoutStateAwaitingGateway = "awaiting_gateway_result"
	CheckoutStateVerified        = "verified"
	CheckoutStateRedirected      = "redirected"
	CheckoutStateFailed          = "failed"
)

// BookingCreator is the booking-store surface the orchestrator depends on.
type BookingCreator interface {
	CreateFromDraft(draft *BookingDraft) (*models.Booking, error)
	ConfirmByGatewayReference(reference string) (*models.Booking, error)
}

// CheckoutError is a failed checkout attempt; its message is what the user
// sees next to the submit control.
type CheckoutError struct {
	Message string
}

func (e *CheckoutError) Error() string { return e.Message }

// CheckoutService sequences a checkout: create the booking record, branch on
// demo-mode vs real payment, verify, persist the confirmation for the
// confirmation view, fire the confirmation email, and hand back the
// redirect. Failed attempts re-enable submission; a retried submission
// creates a fresh booking (no deduplication).
type CheckoutService struct {
	rooms       RoomReader
	bookings    BookingCreator
	gateway     PaymentGateway
	mailer      ConfirmationMailer
	sessions    *SessionStore
	cfg         config.PaystackConfig
	frontendURL string
	demoDelay   time.Duration

	mu       sync.Mutex
	attempts map[string]*checkoutAttempt
}

type checkoutAttempt struct {
	state     string
	bookingID uint
}

func NewCheckoutService(
	rooms RoomReader,
	bookings BookingCreator,
	gateway PaymentGateway,
	mailer ConfirmationMailer,
	sessions *SessionStore,
	cfg config.PaystackConfig,
	frontendURL string,
) *CheckoutService {
	return &CheckoutService{
		rooms:       rooms,
		bookings:    bookings,
		gateway:     gateway,
		mailer:      mailer,
		sessions:    sessions,
		cfg:         cfg,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		demoDelay:   2 * time.Second,
		attempts:    make(map[string]*checkoutAttempt),
	}
}

// SetDemoDelay overrides the simulated gateway latency. Test hook.
func (s *CheckoutService) SetDemoDelay(d time.Duration) {
	s.demoDelay = d
}

// SubmitResult is the outcome of a checkout submission. For demo mode the
// booking is already confirmed and RedirectURL set; for real payments the
// caller sends the user to AuthorizationURL and later completes or abandons
// by Reference.
type SubmitResult struct {
	Booking          *models.Booking
	DemoMode         bool
	Reference        string
	AuthorizationURL string
	RedirectURL      string
}

// CompletionResult is a verified real-payment checkout.
type CompletionResult struct {
	Booking     *models.Booking
	RedirectURL string
}

func (s *CheckoutService) confirmationURL(b *models.Booking) string {
	return fmt.Sprintf("%s/booking/confirmation/%d?reference=%s", s.frontendURL, b.ID, b.PaystackReference)
}

func (s *CheckoutService) setState(reference, state string, bookingID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[reference] = &checkoutAttempt{state: state, bookingID: bookingID}
}

// State reports the tracked state of a checkout reference.
func (s *CheckoutService) State(reference string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[reference]
	if !ok {
		return "", false
	}
	return a.state, true
}

// finalizeVerified runs the Verified → Redirected step shared by both
// branches: save for the confirmation view, fire the email (not awaited),
// hand back the redirect.
func (s *CheckoutService) finalizeVerified(b *models.Booking) string {
	s.sessions.Put(b.PaystackReference, b)
	s.mailer.DispatchConfirmation(b)
	s.setState(b.PaystackReference, CheckoutStateRedirected, b.ID)
	return s.confirmationURL(b)
}

// Submit runs a checkout up to the payment branch point. Validation
// failures come back as *ValidationError before anything is persisted;
// later failures as *CheckoutError after a pending booking may already
// exist.
func (s *CheckoutService) Submit(ctx context.Context, guest GuestInfo, roomID uint, checkInDate, checkOutDate string) (*SubmitResult, error) {
	if roomID == 0 {
		return nil, &ValidationError{Message: "please select a room"}
	}
	if strings.TrimSpace(checkInDate) == "" || strings.TrimSpace(checkOutDate) == "" {
		return nil, &ValidationError{Message: "please select your stay dates"}
	}
	checkIn, err := ParseISODate(checkInDate)
	if err != nil {
		return nil, &ValidationError{Message: "invalid check-in date"}
	}
	checkOut, err := ParseISODate(checkOutDate)
	if err != nil {
		return nil, &ValidationError{Message: "invalid check-out date"}
	}

	room, err := s.rooms.GetRoom(roomID)
	if err != nil {
		if err == ErrRoomNotFound {
			return nil, &ValidationError{Message: "the selected room no longer exists"}
		}
		return nil, &CheckoutError{Message: "could not load the selected room"}
	}

	draft, err := BuildBookingDraft(guest, room, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.CreateFromDraft(draft)
	if err != nil {
		if IsValidationError(err) {
			return nil, err
		}
		log.Printf("checkout: booking creation failed: %v", err)
		return nil, &CheckoutError{Message: "failed to create booking, please try again"}
	}

	if s.cfg.DemoMode() {
		s.setState(booking.PaystackReference, CheckoutStateDemoConfirming, booking.ID)
		// Simulated gateway latency; the demo branch never touches Paystack.
		if s.demoDelay > 0 {
			time.Sleep(s.demoDelay)
		}
		confirmed, err := s.bookings.ConfirmByGatewayReference(booking.PaystackReference)
		if err != nil {
			log.Printf("checkout: demo confirmation failed for booking %d: %v", booking.ID, err)
			s.setState(booking.PaystackReference, CheckoutStateFailed, booking.ID)
			return nil, &CheckoutError{Message: "failed to confirm booking, please try again"}
		}
		s.setState(confirmed.PaystackReference, CheckoutStateVerified, confirmed.ID)
		redirect := s.finalizeVerified(confirmed)
		return &SubmitResult{
			Booking:     confirmed,
			DemoMode:    true,
			Reference:   confirmed.PaystackReference,
			RedirectURL: redirect,
		}, nil
	}

	init, err := s.gateway.InitializeTransaction(ctx, PaystackInitRequest{
		Email:       booking.Email,
		AmountKobo:  booking.TotalAmount * 100,
		Reference:   booking.PaystackReference,
		CallbackURL: s.confirmationURL(booking),
	})
	if err != nil {
		log.Printf("checkout: gateway initialize failed for booking %d: %v", booking.ID, err)
		s.setState(booking.PaystackReference, CheckoutStateFailed, booking.ID)
		return nil, &CheckoutError{Message: "could not start payment, please try again"}
	}

	s.setState(booking.PaystackReference, CheckoutStateAwaitingGateway, booking.ID)
	return &SubmitResult{
		Booking:          booking,
		Reference:        booking.PaystackReference,
		AuthorizationURL: init.AuthorizationURL,
	}, nil
}

// Abandon handles the gateway's closed-without-completing callback: the
// attempt is dropped and submission re-enabled. The pending booking is left
// as-is; nothing cancels it.
func (s *CheckoutService) Abandon(reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[reference]
	if !ok || a.state != CheckoutStateAwaitingGateway {
		return &CheckoutError{Message: "no payment in progress for this reference"}
	}
	delete(s.attempts, reference)
	return nil
}

// CompleteGatewaySuccess handles the gateway's success callback: verify
// server-side by reference, confirm the booking, then finalize.
func (s *CheckoutService) CompleteGatewaySuccess(ctx context.Context, reference string) (*CompletionResult, error) {
	s.mu.Lock()
	a, ok := s.attempts[reference]
	if !ok || a.state != CheckoutStateAwaitingGateway {
		s.mu.Unlock()
		return nil, &CheckoutError{Message: "no payment in progress for this reference"}
	}
	bookingID := a.bookingID
	s.mu.Unlock()

	if err := s.gateway.VerifyTransaction(ctx, reference); err != nil {
		log.Printf("checkout: verification failed for booking %d: %v", bookingID, err)
		s.setState(reference, CheckoutStateFailed, bookingID)
		return nil, &CheckoutError{Message: "payment verification failed"}
	}

	booking, err := s.bookings.ConfirmByGatewayReference(reference)
	if err != nil {
		log.Printf("checkout: confirm failed for booking %d: %v", bookingID, err)
		s.setState(reference, CheckoutStateFailed, bookingID)
		return nil, &CheckoutError{Message: "failed to confirm booking, please contact us"}
	}

	s.setState(reference, CheckoutStateVerified, booking.ID)
	redirect := s.finalizeVerified(booking)
	return &CompletionResult{Booking: booking, RedirectURL: redirect}, nil
}

// Confirmation returns the booking saved for the confirmation view.
func (s *CheckoutService) Confirmation(reference string) (*models.Booking, bool) {
	return s.sessions.Get(reference)
}
