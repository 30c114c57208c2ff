package verifier

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Codewith-Raja/securevault/internal/pkg/instrument"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		Timeout:    time.Second,
		Instrument: instrument.NewNoop(),
	})
}

func TestClient_VerifyDeliverable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "user@example.com", r.URL.Query().Get("email"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_valid_format":{"value":true},"deliverability":"DELIVERABLE"}`))
	})

	assert.True(t, client.Verify(t.Context(), "user@example.com"))
}

func TestClient_VerifyUndeliverable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"is_valid_format":{"value":true},"deliverability":"UNDELIVERABLE"}`))
	})

	assert.False(t, client.Verify(t.Context(), "user@example.com"))
}

func TestClient_VerifyInvalidFormat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"is_valid_format":{"value":false},"deliverability":"DELIVERABLE"}`))
	})

	assert.False(t, client.Verify(t.Context(), "not-an-email"))
}

func TestClient_VerifyFailsClosedOnAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	})

	assert.False(t, client.Verify(t.Context(), "user@example.com"))
}

func TestClient_VerifyFailsClosedOnServerError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.False(t, client.Verify(t.Context(), "user@example.com"))
	assert.Equal(t, int32(2), calls.Load(), "a transient failure is retried once")
}

func TestClient_VerifyFailsClosedOnMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"is_valid_format":`))
	})

	assert.False(t, client.Verify(t.Context(), "user@example.com"))
}
