// Package recaptcha verifies client CAPTCHA responses against Google's
// siteverify endpoint.
package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultVerifyURL is Google's siteverify endpoint.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// ErrVerificationFailed covers both a rejected response and an unreachable
// verification service; callers treat the two identically.
var ErrVerificationFailed = errors.New("recaptcha: verification failed")

type verifyResponse struct {
	Success bool `json:"success"`
}

// Client verifies CAPTCHA responses with a shared secret.
type Client struct {
	secret    string
	verifyURL string
	client    *http.Client
}

// NewClient returns a Client using secret. verifyURL and httpClient may be
// empty/nil for the defaults.
func NewClient(secret, verifyURL string, httpClient *http.Client) *Client {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{secret: secret, verifyURL: verifyURL, client: httpClient}
}

// Verify checks a client response token. Any failure, including a network
// error reaching the verifier, is ErrVerificationFailed.
func (c *Client) Verify(ctx context.Context, response string) error {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", response)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	defer resp.Body.Close()

	var parsed verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrVerificationFailed, err)
	}
	if !parsed.Success {
		return ErrVerificationFailed
	}
	return nil
}
