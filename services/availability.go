package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resort-backend/models"

	"gorm.io/gorm"
)

// AvailabilityState is the tri-state outcome of an availability check.
type AvailabilityState int

const (
	AvailabilityAvailable AvailabilityState = iota
	AvailabilityUnavailable
	AvailabilityIndeterminate
)

func (s AvailabilityState) String() string {
	switch s {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityUnavailable:
		return "not_available"
	default:
		return "indeterminate"
	}
}

// AvailabilityResult carries the state plus the cause when the check could
// not be completed.
type AvailabilityResult struct {
	State AvailabilityState
	Err   error
}

// FailOpen maps an indeterminate result to "available": a degraded
// availability subsystem must not block bookings, at the accepted cost of a
// possible double-booking. Callers surface only this collapsed view.
func (r AvailabilityResult) FailOpen() bool {
	return r.State != AvailabilityUnavailable
}

// AvailabilityChecker answers whether a room is free for a date range.
// A single attempt per call; callers re-trigger manually if they want.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) AvailabilityResult
}

// StoreAvailabilityService answers from the local bookings table. Any
// booking overlapping the range, paid or still pending payment, blocks it.
type StoreAvailabilityService struct {
	DB *gorm.DB
}

func NewStoreAvailabilityService(db *gorm.DB) *StoreAvailabilityService {
	return &StoreAvailabilityService{DB: db}
}

func (s *StoreAvailabilityService) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) AvailabilityResult {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ? AND check_in_date < ? AND check_out_date > ?", roomID, checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return AvailabilityResult{State: AvailabilityIndeterminate, Err: fmt.Errorf("availability query failed: %w", err)}
	}
	if count > 0 {
		return AvailabilityResult{State: AvailabilityUnavailable}
	}
	return AvailabilityResult{State: AvailabilityAvailable}
}

// RemoteAvailabilityChecker asks an external inventory system over HTTP.
// Response interpretation, in order:
//   - body with an "available" boolean: that answer
//   - body with an "error" field: indeterminate
//   - transport failure or non-JSON body: indeterminate
//   - anything else: not available
type RemoteAvailabilityChecker struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewRemoteAvailabilityChecker(baseURL string) *RemoteAvailabilityChecker {
	return &RemoteAvailabilityChecker{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type availabilityRequest struct {
	RoomID       uint   `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type availabilityResponse struct {
	Available *bool   `json:"available"`
	Error     *string `json:"error"`
}

func (c *RemoteAvailabilityChecker) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) AvailabilityResult {
	body, err := json.Marshal(availabilityRequest{
		RoomID:       roomID,
		CheckInDate:  checkIn.Format(ISODate),
		CheckOutDate: checkOut.Format(ISODate),
	})
	if err != nil {
		return AvailabilityResult{State: AvailabilityIndeterminate, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/availability-check", bytes.NewReader(body))
	if err != nil {
		return AvailabilityResult{State: AvailabilityIndeterminate, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return AvailabilityResult{State: AvailabilityIndeterminate, Err: fmt.Errorf("availability request failed: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return AvailabilityResult{State: AvailabilityIndeterminate, Err: err}
	}

	var parsed availabilityResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return AvailabilityResult{State: AvailabilityIndeterminate, Err: fmt.Errorf("availability response not JSON: %w", err)}
	}

	switch {
	case parsed.Available != nil && *parsed.Available:
		return AvailabilityResult{State: AvailabilityAvailable}
	case parsed.Available != nil:
		return AvailabilityResult{State: AvailabilityUnavailable}
	case parsed.Error != nil:
		return AvailabilityResult{State: AvailabilityIndeterminate, Err: fmt.Errorf("inventory reported: %s", *parsed.Error)}
	default:
		return AvailabilityResult{State: AvailabilityUnavailable}
	}
}
