package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-pulse/logging"
)

func newTestClient(t *testing.T, status int, body string, seen *url.Values) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/everything" {
			http.NotFound(w, r)
			return
		}
		if seen != nil {
			*seen = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, APIKey: "k-123", Timeout: 2 * time.Second}, logging.Nop())
}

func TestClient_Search(t *testing.T) {
	body := `{"status":"ok","totalResults":2,"articles":[
		{"source":{"id":null,"name":"Reuters"},"title":"Apple rallies","url":"https://example.com/a","publishedAt":"2024-05-01T10:00:00Z","content":"..."},
		{"source":{},"title":null}]}`
	var seen url.Values
	c := newTestClient(t, http.StatusOK, body, &seen)

	articles, err := c.Search(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "Apple rallies", articles[0].Title.String)
	assert.Equal(t, "https://example.com/a", articles[0].URL.String)
	assert.Equal(t, "Reuters", articles[0].Source.Name.String)
	assert.False(t, articles[1].Title.Valid)
	assert.False(t, articles[1].Source.Name.Valid)

	assert.Equal(t, "AAPL", seen.Get("q"))
	assert.Equal(t, "publishedAt", seen.Get("sortBy"))
	assert.Equal(t, "k-123", seen.Get("apiKey"))
}

func TestClient_Search_NoArticlesField(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api key missing", http.StatusUnauthorized, `{"status":"error","code":"apiKeyMissing","message":"Your API key is missing."}`},
		{"ok without articles", http.StatusOK, `{"status":"ok","totalResults":0}`},
		{"empty articles", http.StatusOK, `{"status":"ok","totalResults":0,"articles":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.status, tt.body, nil)

			articles, err := c.Search(context.Background(), "TCS.NS")
			require.NoError(t, err)
			assert.NotNil(t, articles)
			assert.Empty(t, articles)
		})
	}
}

func TestClient_Search_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second}, logging.Nop())

	_, err := c.Search(context.Background(), "AAPL")
	assert.Error(t, err)
}

func TestClient_Search_GatewayErrorPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second}, logging.Nop())

	_, err := c.Search(context.Background(), "AAPL")
	assert.ErrorIs(t, err, ErrStatus)
}
