package config

import (
	"strings"
	"time"
)

// PaystackPlaceholderPublicKey is the sentinel that ships in .env templates.
// A config still carrying it means nobody has wired a real gateway account.
const PaystackPlaceholderPublicKey = "pk_test_xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"

const paystackDefaultBaseURL = "https://api.paystack.co"

// PaystackConfig is the gateway configuration read from the environment.
type PaystackConfig struct {
	PublicKey string
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
}

// LoadPaystack reads the gateway settings from env.
func LoadPaystack() PaystackConfig {
	return PaystackConfig{
		PublicKey: strings.TrimSpace(envOrDefault("PAYSTACK_PUBLIC_KEY", "")),
		SecretKey: strings.TrimSpace(envOrDefault("PAYSTACK_SECRET_KEY", "")),
		BaseURL:   strings.TrimRight(envOrDefault("PAYSTACK_BASE_URL", paystackDefaultBaseURL), "/"),
		Timeout:   15 * time.Second,
	}
}

// DemoMode reports whether checkout should simulate payment instead of
// contacting the gateway: the public key is missing, is the placeholder
// sentinel, or does not look like a Paystack public key at all.
func (c PaystackConfig) DemoMode() bool {
	key := strings.TrimSpace(c.PublicKey)
	if key == "" {
		return true
	}
	if key == PaystackPlaceholderPublicKey {
		return true
	}
	if !strings.HasPrefix(key, "pk_") {
		return true
	}
	return false
}
