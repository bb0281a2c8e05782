package detect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudboard/internal/catalog"
)

func TestClientDetectSuccess(t *testing.T) {
	var gotBody detectRequest
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/detect", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"provider": "AWS"})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	provider, err := c.Detect(context.Background(), "https://www.stripe.com")
	require.NoError(t, err)
	assert.Equal(t, catalog.ProviderAWS, provider)

	// The raw input is forwarded untouched; normalization is not this
	// client's job.
	assert.Equal(t, "https://www.stripe.com", gotBody.URL)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientDetectUnknownProviderName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"provider": "Hetzner"})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	provider, err := c.Detect(context.Background(), "example.org")
	require.NoError(t, err)
	assert.Equal(t, catalog.ProviderOther, provider)
}

func TestClientDetectNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.Detect(context.Background(), "example.org")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestClientDetectMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.Detect(context.Background(), "example.org")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode detect response")
}

func TestClientDetectContextCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(srv.URL, 5*time.Second)
	_, err := c.Detect(ctx, "example.org")
	assert.Error(t, err)
}

func TestFuncAdapter(t *testing.T) {
	f := Func(func(ctx context.Context, rawURL string) (catalog.Provider, error) {
		return catalog.ProviderGCP, nil
	})
	p, err := f.Detect(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, catalog.ProviderGCP, p)
}
