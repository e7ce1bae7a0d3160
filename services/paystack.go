package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"resort-backend/config"
)

// PaymentGateway is what the checkout orchestrator needs from the hosted
// payment provider.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, req PaystackInitRequest) (*PaystackInitResult, error)
	VerifyTransaction(ctx context.Context, reference string) error
}

// PaystackInitRequest starts a hosted checkout. Amount is in kobo, the
// naira's minor unit.
type PaystackInitRequest struct {
	Email       string `json:"email"`
	AmountKobo  int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url,omitempty"`
}

// PaystackInitResult is what the frontend needs to hand the user over to
// the hosted payment page.
type PaystackInitResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// PaystackClient talks to the Paystack REST API. The underlying HTTP client
// is set up lazily and exactly once, on the first real-payment checkout.
type PaystackClient struct {
	cfg config.PaystackConfig

	setup      sync.Once
	httpClient *http.Client
}

func NewPaystackClient(cfg config.PaystackConfig) *PaystackClient {
	return &PaystackClient{cfg: cfg}
}

func (c *PaystackClient) ensureClient() {
	c.setup.Do(func() {
		timeout := c.cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		c.httpClient = &http.Client{Timeout: timeout}
	})
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *PaystackClient) do(ctx context.Context, method, path string, body interface{}) (*paystackEnvelope, int, error) {
	c.ensureClient()

	if strings.TrimSpace(c.cfg.SecretKey) == "" {
		return nil, 0, fmt.Errorf("paystack config error: secret key is empty")
	}

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	var envelope paystackEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("paystack response decode failed: %w", err)
	}
	return &envelope, resp.StatusCode, nil
}

// InitializeTransaction creates a gateway transaction and returns the hosted
// payment URL for the given reference.
func (c *PaystackClient) InitializeTransaction(ctx context.Context, req PaystackInitRequest) (*PaystackInitResult, error) {
	if req.AmountKobo <= 0 {
		return nil, fmt.Errorf("validation error: amount must be > 0")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("validation error: payer email is required")
	}
	if strings.TrimSpace(req.Reference) == "" {
		return nil, fmt.Errorf("validation error: reference is required")
	}

	envelope, status, err := c.do(ctx, http.MethodPost, "/transaction/initialize", req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 || !envelope.Status {
		return nil, fmt.Errorf("paystack initialize rejected: %s", envelope.Message)
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("paystack initialize data decode failed: %w", err)
	}

	return &PaystackInitResult{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// VerifyTransaction confirms with the gateway that the transaction behind
// the reference actually settled.
func (c *PaystackClient) VerifyTransaction(ctx context.Context, reference string) error {
	if strings.TrimSpace(reference) == "" {
		return fmt.Errorf("validation error: reference is required")
	}

	envelope, status, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 || !envelope.Status {
		return fmt.Errorf("paystack verify rejected: %s", envelope.Message)
	}

	var data struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return fmt.Errorf("paystack verify data decode failed: %w", err)
	}
	if data.Status != "success" {
		return fmt.Errorf("transaction %s not successful: %s", reference, data.Status)
	}
	return nil
}
