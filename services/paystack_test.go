package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resort-backend/config"
)

func paystackTestClient(handler http.HandlerFunc) (*PaystackClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewPaystackClient(config.PaystackConfig{
		PublicKey: "pk_test_real",
		SecretKey: "sk_test_secret",
		BaseURL:   srv.URL,
		Timeout:   5 * time.Second,
	}), srv
}

func TestInitializeTransaction(t *testing.T) {
	client, srv := paystackTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/transaction/initialize" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_secret" {
			t.Errorf("missing bearer auth, got %q", got)
		}
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.example/abc","access_code":"abc","reference":"ref-1"}}`))
	})
	defer srv.Close()

	res, err := client.InitializeTransaction(context.Background(), PaystackInitRequest{
		Email:      "ada@example.com",
		AmountKobo: 40400000,
		Reference:  "ref-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AuthorizationURL != "https://checkout.example/abc" || res.Reference != "ref-1" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestInitializeTransactionValidation(t *testing.T) {
	client := NewPaystackClient(config.PaystackConfig{SecretKey: "sk_test_secret", BaseURL: "http://unused"})

	if _, err := client.InitializeTransaction(context.Background(), PaystackInitRequest{Email: "a@b.c", Reference: "r"}); err == nil {
		t.Fatalf("zero amount must be rejected before any request")
	}
	if _, err := client.InitializeTransaction(context.Background(), PaystackInitRequest{AmountKobo: 100, Reference: "r"}); err == nil {
		t.Fatalf("missing email must be rejected")
	}
}

func TestVerifyTransactionSuccess(t *testing.T) {
	client, srv := paystackTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/ref-9" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success"}}`))
	})
	defer srv.Close()

	if err := client.VerifyTransaction(context.Background(), "ref-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifyTransactionNotSettled(t *testing.T) {
	client, srv := paystackTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"abandoned"}}`))
	})
	defer srv.Close()

	if err := client.VerifyTransaction(context.Background(), "ref-9"); err == nil {
		t.Fatalf("non-success transaction status must fail verification")
	}
}

func TestVerifyTransactionHTTPFailure(t *testing.T) {
	client, srv := paystackTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	})
	defer srv.Close()

	if err := client.VerifyTransaction(context.Background(), "missing"); err == nil {
		t.Fatalf("non-2xx must fail verification")
	}
}
