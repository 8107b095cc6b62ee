package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRoundTrip(t *testing.T) {
	var gotMethod string
	var gotParams []any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotMethod = req.Method
		gotParams = req.Params.([]any)

		json.NewEncoder(w).Encode(map[string]any{"result": "0xsettled"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "0xTREASURY", "42431")

	ref, err := c.Execute(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "0xsettled", ref)
	assert.Equal(t, "treasury_execute", gotMethod)
	require.Len(t, gotParams, 2)
	assert.Equal(t, "0xTREASURY", gotParams[0], "treasury address leads every call")
	assert.Equal(t, "tx-1", gotParams[1])
}

func TestClientLedgerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": -32000, "message": "timelock not elapsed"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "0xTREASURY", "42431")

	err := c.Approve(context.Background(), "tx-1")
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32000, rpcErr.Code)
	assert.NotErrorIs(t, err, ErrUnavailable, "a ledger rejection is not an outage")
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "0xTREASURY", "42431")

	_, err := c.GetBalance(context.Background(), "0xACC1")
	assert.ErrorIs(t, err, ErrUnavailable)

	srv.Close()
	_, err = c.GetBalance(context.Background(), "0xACC1")
	assert.ErrorIs(t, err, ErrUnavailable)
}
