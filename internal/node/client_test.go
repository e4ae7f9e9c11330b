package node

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccount = "xrb_3txm99yb6yq1t56iznzthbmjy9wntg61itxusqkhiixh4fz38i7rhsmyjt7a"

func TestAccountHistory(t *testing.T) {
	var gotRequest historyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"history": []map[string]string{{
				"type":    "receive",
				"account": testAccount,
				"amount":  "120568492000000000000000000000",
				"hash":    "89F14F380D84746B014323E78985FC1750D64C1345A9870AC4F749250AA6C82D",
			}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	history, err := client.AccountHistory(context.Background(), testAccount)
	require.NoError(t, err)

	assert.Equal(t, "account_history", gotRequest.Action)
	assert.Equal(t, testAccount, gotRequest.Account)
	assert.Equal(t, 10, gotRequest.Count)

	require.Len(t, history, 1)
	assert.Equal(t, "receive", history[0].Type)
	assert.Equal(t, testAccount, history[0].Account)
	assert.Equal(t, "120568492000000000000000000000", history[0].Amount)
	assert.Equal(t, "89F14F380D84746B014323E78985FC1750D64C1345A9870AC4F749250AA6C82D", history[0].Hash)
}

func TestAccountHistoryMissingHistoryField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Account not found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	history, err := client.AccountHistory(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NotNil(t, history)
}

func TestAccountHistoryInvalidAddressShortCircuits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no network call expected for an invalid address")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.AccountHistory(context.Background(), "nano_account")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAccountHistoryNodeDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on

	client := NewClient(srv.URL, nil)
	_, err := client.AccountHistory(context.Background(), testAccount)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAccountHistoryMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.AccountHistory(context.Background(), testAccount)
	assert.ErrorIs(t, err, ErrUnavailable)
}
