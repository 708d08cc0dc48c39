package recon

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/models"
)

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Login - Example</title></head>
<body>
  <form id="login-form" action="/login" method="post">
    <input data-testid="username" type="text" name="username">
    <input id="password" type="password" name="password">
    <input class="btn primary" type="submit" value="Sign in">
  </form>
  <button data-testid="help">Help</button>
  <button>No locator at all</button>
  <a href="/register" id="register-link">Register</a>
  <a href="/forgot">Forgot password</a>
  <textarea id="notes" name="notes"></textarea>
</body>
</html>`

func newExplorer(t *testing.T, maxElements int) *HTTPExplorer {
	t.Helper()
	return NewExplorer(
		config.ReconConfig{MaxElements: maxElements},
		slog.New(slog.DiscardHandler),
	)
}

func TestExplorePage_ExtractsStructure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginPage))
	}))
	defer srv.Close()

	e := newExplorer(t, 50)
	s, err := e.ExplorePage(context.Background(), srv.URL, 5*time.Second)
	require.NoError(t, err)

	assert.Equal(t, srv.URL, s.URL)
	assert.Equal(t, "Login - Example", s.Title)

	// Submit input and the two buttons; the locator-less button is
	// skipped and recorded as an extraction error.
	require.Len(t, s.Buttons, 2)
	assert.Equal(t, `.btn`, s.Buttons[0].Selector)
	assert.Equal(t, `[data-testid="help"]`, s.Buttons[1].Selector)
	assert.NotEmpty(t, s.Errors)

	require.Len(t, s.Inputs, 3)
	assert.Equal(t, `[data-testid="username"]`, s.Inputs[0].Selector)
	assert.Equal(t, "#password", s.Inputs[1].Selector)
	assert.Equal(t, "password", s.Inputs[1].Type)
	assert.Equal(t, "#notes", s.Inputs[2].Selector)

	require.Len(t, s.Links, 2)
	assert.Equal(t, "#register-link", s.Links[0].Selector)
	assert.Equal(t, "/register", s.Links[0].Href)
	assert.Equal(t, `a[href="/forgot"]`, s.Links[1].Selector)

	require.Len(t, s.Forms, 1)
	assert.Equal(t, "#login-form", s.Forms[0].Selector)
	assert.Equal(t, "POST", s.Forms[0].Method)
	assert.Len(t, s.Forms[0].Inputs, 3)
}

func TestExplorePage_SelectorPreference(t *testing.T) {
	page := `<html><body>
	  <button data-testid="save" id="save-btn" class="btn">Save</button>
	</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	e := newExplorer(t, 50)
	s, err := e.ExplorePage(context.Background(), srv.URL, 5*time.Second)
	require.NoError(t, err)

	require.Len(t, s.Buttons, 1)
	assert.Equal(t, `[data-testid="save"]`, s.Buttons[0].Selector, "data-testid wins over id and class")
}

func TestExplorePage_CapsElements(t *testing.T) {
	page := "<html><body>"
	for i := 0; i < 100; i++ {
		page += `<button id="b` + string(rune('a'+i%26)) + `">x</button>`
	}
	page += "</body></html>"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	e := newExplorer(t, 10)
	s, err := e.ExplorePage(context.Background(), srv.URL, 5*time.Second)
	require.NoError(t, err)
	assert.Len(t, s.Buttons, 10)
}

func TestExplorePage_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	e := newExplorer(t, 50)
	_, err := e.ExplorePage(context.Background(), srv.URL, 5*time.Second)
	require.Error(t, err)
	assert.True(t, models.IsTransient(err))
	assert.Equal(t, models.CodeReconTimeout, models.ErrorCode(err))
}

func TestExplorePage_Unreachable(t *testing.T) {
	e := newExplorer(t, 50)
	_, err := e.ExplorePage(context.Background(), "http://127.0.0.1:1", 500*time.Millisecond)
	require.Error(t, err)
	assert.True(t, models.IsTransient(err))
}

type countingExplorer struct {
	calls atomic.Int32
	page  *PageStructure
}

func (c *countingExplorer) ExplorePage(_ context.Context, url string, _ time.Duration) (*PageStructure, error) {
	c.calls.Add(1)
	return c.page, nil
}

func TestCachedExplorer(t *testing.T) {
	inner := &countingExplorer{page: &PageStructure{URL: "https://example.com"}}
	cached := NewCachedExplorer(inner, time.Hour)

	ctx := context.Background()
	s1, err := cached.ExplorePage(ctx, "https://example.com", time.Second)
	require.NoError(t, err)
	s2, err := cached.ExplorePage(ctx, "https://example.com", time.Second)
	require.NoError(t, err)

	assert.Same(t, s1, s2)
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestCachedExplorer_Expiry(t *testing.T) {
	inner := &countingExplorer{page: &PageStructure{URL: "https://example.com"}}
	cached := NewCachedExplorer(inner, 10*time.Millisecond)

	ctx := context.Background()
	_, err := cached.ExplorePage(ctx, "https://example.com", time.Second)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = cached.ExplorePage(ctx, "https://example.com", time.Second)
	require.NoError(t, err)
	assert.Equal(t, int32(2), inner.calls.Load())
}
