// Package node talks to the RPC interface of a local Nano node. The only
// call in use is account_history; the node is treated as a fixed external
// contract.
package node

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"nanotify/internal/validate"
)

// historyCount is how many recent entries the proxy asks the node for.
const historyCount = 10

// ErrInvalidAddress is returned before any network call when the address
// fails format validation.
var ErrInvalidAddress = errors.New("node: invalid account address")

// ErrUnavailable is returned when the node cannot be reached or answers
// with garbage. The client never retries.
var ErrUnavailable = errors.New("node: unavailable")

// HistoryEntry is one transaction record from account_history. Amount is a
// raw decimal string as the node reports it.
type HistoryEntry struct {
	Type    string `json:"type"`    // "send" or "receive"
	Account string `json:"account"` // Counterparty address
	Amount  string `json:"amount"`  // Raw amount, decimal string
	Hash    string `json:"hash"`    // Block hash
}

type historyRequest struct {
	Action  string `json:"action"`
	Account string `json:"account"`
	Count   int    `json:"count"`
}

type historyResponse struct {
	History []HistoryEntry `json:"history"`
}

// Client is a minimal Nano node RPC client.
type Client struct {
	url    string
	client *http.Client
}

// NewClient returns a Client for the node RPC at url. httpClient may be
// nil, in which case http.DefaultClient is used.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: url, client: httpClient}
}

// AccountHistory fetches the most recent transactions for account. The
// returned slice is never nil on success; a response without a history
// field yields an empty slice.
func (c *Client) AccountHistory(ctx context.Context, account string) ([]HistoryEntry, error) {
	if !validate.IsValidAddress(account) {
		return nil, ErrInvalidAddress
	}

	body, err := json.Marshal(historyRequest{
		Action:  "account_history",
		Account: account,
		Count:   historyCount,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var parsed historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if parsed.History == nil {
		return []HistoryEntry{}, nil
	}
	return parsed.History, nil
}
