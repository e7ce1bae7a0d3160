package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func remoteChecker(handler http.HandlerFunc) (*RemoteAvailabilityChecker, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewRemoteAvailabilityChecker(srv.URL), srv
}

func checkRemote(t *testing.T, c *RemoteAvailabilityChecker) AvailabilityResult {
	t.Helper()
	return c.CheckAvailability(context.Background(), 1, day("2025-04-10"), day("2025-04-12"))
}

func TestRemoteCheckerAvailableAnswer(t *testing.T) {
	c, srv := remoteChecker(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/availability-check" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"available":true}`))
	})
	defer srv.Close()

	res := checkRemote(t, c)
	if res.State != AvailabilityAvailable {
		t.Fatalf("expected available, got %s", res.State)
	}
}

func TestRemoteCheckerUnavailableAnswer(t *testing.T) {
	c, srv := remoteChecker(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"available":false}`))
	})
	defer srv.Close()

	res := checkRemote(t, c)
	if res.State != AvailabilityUnavailable {
		t.Fatalf("expected not_available, got %s", res.State)
	}
	if res.FailOpen() {
		t.Fatalf("an explicit unavailable answer must not be collapsed to available")
	}
}

func TestRemoteCheckerErrorFieldIsIndeterminate(t *testing.T) {
	c, srv := remoteChecker(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"inventory offline"}`))
	})
	defer srv.Close()

	res := checkRemote(t, c)
	if res.State != AvailabilityIndeterminate {
		t.Fatalf("expected indeterminate, got %s", res.State)
	}
	if !res.FailOpen() {
		t.Fatalf("indeterminate must fail open to available")
	}
}

func TestRemoteCheckerTransportFailureFailsOpen(t *testing.T) {
	c, srv := remoteChecker(func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // connection refused from here on

	res := checkRemote(t, c)
	if res.State != AvailabilityIndeterminate {
		t.Fatalf("expected indeterminate on transport failure, got %s", res.State)
	}
	if !res.FailOpen() {
		t.Fatalf("transport failure must fail open to available")
	}
}

func TestRemoteCheckerNonJSONBodyFailsOpen(t *testing.T) {
	c, srv := remoteChecker(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	})
	defer srv.Close()

	res := checkRemote(t, c)
	if res.State != AvailabilityIndeterminate || !res.FailOpen() {
		t.Fatalf("non-JSON body must be indeterminate/fail-open, got %s", res.State)
	}
}

func TestRemoteCheckerUnknownShapeIsUnavailable(t *testing.T) {
	c, srv := remoteChecker(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rooms":3}`))
	})
	defer srv.Close()

	res := checkRemote(t, c)
	if res.State != AvailabilityUnavailable {
		t.Fatalf("unknown shape must be conservative not_available, got %s", res.State)
	}
}
