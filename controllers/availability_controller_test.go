package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type stubChecker struct {
	result services.AvailabilityResult
}

func (s *stubChecker) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) services.AvailabilityResult {
	return s.result
}

func availabilityRouter(checker services.AvailabilityChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAvailabilityController(checker)
	r.POST("/api/availability-check", ctrl.CheckAvailability)
	return r
}

func postAvailability(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/availability-check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckAvailabilityResponses(t *testing.T) {
	body := `{"roomId":7,"checkInDate":"2025-04-10","checkOutDate":"2025-04-12"}`
	cases := []struct {
		name   string
		result services.AvailabilityResult
		want   bool
	}{
		{"available", services.AvailabilityResult{State: services.AvailabilityAvailable}, true},
		{"unavailable", services.AvailabilityResult{State: services.AvailabilityUnavailable}, false},
		{"indeterminate reports available", services.AvailabilityResult{State: services.AvailabilityIndeterminate, Err: errors.New("store down")}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := availabilityRouter(&stubChecker{result: tc.result})
			w := postAvailability(t, r, body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			var resp struct {
				Available bool `json:"available"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("bad response body: %v", err)
			}
			if resp.Available != tc.want {
				t.Fatalf("available = %v, want %v", resp.Available, tc.want)
			}
		})
	}
}

func TestCheckAvailabilityBadRequests(t *testing.T) {
	r := availabilityRouter(&stubChecker{result: services.AvailabilityResult{State: services.AvailabilityAvailable}})
	cases := []struct {
		name string
		body string
	}{
		{"missing room", `{"checkInDate":"2025-04-10","checkOutDate":"2025-04-12"}`},
		{"missing dates", `{"roomId":7}`},
		{"bad date format", `{"roomId":7,"checkInDate":"10/04/2025","checkOutDate":"2025-04-12"}`},
		{"inverted range", `{"roomId":7,"checkInDate":"2025-04-12","checkOutDate":"2025-04-10"}`},
		{"zero-night stay", `{"roomId":7,"checkInDate":"2025-04-10","checkOutDate":"2025-04-10"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postAvailability(t, r, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
