package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barhopapp/barhop/internal/errors"
)

// fakeTokenSource is a mutable in-memory token source.
type fakeTokenSource struct {
	mu    sync.Mutex
	token string
	err   error
}

func (f *fakeTokenSource) Get(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, f.err
}

func (f *fakeTokenSource) set(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, tokens)
}

func TestBearerAttachedFromSource(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	tokens := &fakeTokenSource{token: "tok-1"}
	client := newTestClient(t, handler, tokens)
	ctx := context.Background()

	_, err := client.ListBars(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)

	// The token is re-read at request time, not captured at construction.
	tokens.set("tok-2")
	_, err = client.ListBars(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-2", gotAuth)
}

func TestNoBearerWhenAbsent(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	client := newTestClient(t, handler, &fakeTokenSource{})

	_, err := client.ListBars(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "absent token must send the request unauthenticated")
}

func TestTokenReadFailureDegradesToUnauthenticated(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	tokens := &fakeTokenSource{err: errors.NewStoreReadError(assert.AnError)}
	client := newTestClient(t, handler, tokens)

	_, err := client.ListBars(context.Background(), "")
	require.NoError(t, err, "a broken credential store must not fail the request")
	assert.Empty(t, gotAuth)
}

func TestRequestIDHeader(t *testing.T) {
	ids := map[string]bool{}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[r.Header.Get("X-Request-ID")] = true
		w.Write([]byte(`[]`))
	})

	client := newTestClient(t, handler, nil)
	ctx := context.Background()

	_, err := client.ListBars(ctx, "")
	require.NoError(t, err)
	_, err = client.ListBars(ctx, "")
	require.NoError(t, err)

	assert.Len(t, ids, 2, "each request gets a fresh request ID")
	for id := range ids {
		assert.NotEmpty(t, id)
	}
}

func TestUnauthorizedMapsToAuthExpired(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "token revoked"}`))
	})

	client := newTestClient(t, handler, &fakeTokenSource{token: "stale"})

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeAuthExpired))
	assert.Contains(t, err.Error(), "token revoked")
}

func TestServerErrorMessageSurfaced(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success": false, "message": "bar name already taken"}`))
	})

	client := newTestClient(t, handler, nil)

	_, err := client.CreateBar(context.Background(), CreateBarRequest{Name: "Duplicate"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeServerRejected))
	assert.Contains(t, err.Error(), "bar name already taken")
}

func TestEnvelopeUnwrapped(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": {"id": "bar-1", "name": "The Tap Room"}}`))
	})

	client := newTestClient(t, handler, nil)

	bar, err := client.GetBar(context.Background(), "bar-1")
	require.NoError(t, err)
	assert.Equal(t, "The Tap Room", bar.Name)
}

func TestRawObjectPassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "bar-1", "name": "The Tap Room"}`))
	})

	client := newTestClient(t, handler, nil)

	bar, err := client.GetBar(context.Background(), "bar-1")
	require.NoError(t, err)
	assert.Equal(t, "The Tap Room", bar.Name)
}

func TestTransportFailureMapsToNetworkError(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, 1*time.Second, nil)

	_, err := client.ListBars(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNetwork))
}

func TestContextCancellation(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	client := newTestClient(t, handler, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ListBars(ctx, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
