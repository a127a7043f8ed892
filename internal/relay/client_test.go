package relay

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Send(t *testing.T) {
	var got outbound
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`[{"recipient_id":"user","text":"Hi"},{"text":"Bye","buttons":[]}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", time.Second, 0, discardLogger())
	items, err := c.Send(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, outbound{Sender: "user", Message: "hello"}, got)
	require.Len(t, items, 2)
	assert.JSONEq(t, `{"recipient_id":"user","text":"Hi"}`, string(items[0]))
	assert.JSONEq(t, `{"text":"Bye","buttons":[]}`, string(items[1]))
}

func TestClient_SendNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", time.Second, 0, discardLogger())
	_, err := c.Send(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEngineStatus)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_SendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, "user", time.Second, 0, discardLogger())
	_, err := c.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEngineStatus)
}

func TestClient_SendBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text":"not a list"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", time.Second, 0, discardLogger())
	_, err := c.Send(context.Background(), "hello")
	assert.ErrorContains(t, err, "decode response")
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", time.Second, 1, discardLogger())
	_, err := c.Send(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.Send(ctx, "second")
	assert.ErrorContains(t, err, "rate limit wait")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate([]byte("abc"), 5))
	assert.Equal(t, "ab...", truncate([]byte("abcdef"), 2))
}
