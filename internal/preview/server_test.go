package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(zap.NewNop(), ServerOptions{FullName: "Test User", Development: true})
}

func get(t *testing.T, s *Server, path string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func post(t *testing.T, s *Server, path string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestServer_Page(t *testing.T) {
	s := newTestServer(t)

	t.Run("defaults to admin", func(t *testing.T) {
		res, body := get(t, s, "/")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
		assert.Contains(t, body, "admin-sidebar")
	})

	t.Run("role query selects variant", func(t *testing.T) {
		_, body := get(t, s, "/?role=teacher")
		assert.NotContains(t, body, "admin-sidebar")
		assert.Contains(t, body, "Invigilation Schedule")
	})

	t.Run("unknown role falls back to guest", func(t *testing.T) {
		_, body := get(t, s, "/?role=wizard")
		assert.Contains(t, body, "Sign in")
	})

	t.Run("development section shown", func(t *testing.T) {
		_, body := get(t, s, "/?role=admin")
		assert.Contains(t, body, "Seed Data")
	})
}

func TestServer_MarkRead(t *testing.T) {
	s := newTestServer(t)

	var unreadID string
	for _, n := range s.store.List() {
		if !n.IsRead {
			unreadID = n.ID
			break
		}
	}
	require.NotEmpty(t, unreadID)

	res, body := post(t, s, "/api/notifications/"+unreadID+"/read")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "application/json")
	assert.Contains(t, body, `"changed":true`)

	// Marking again changes nothing.
	_, body = post(t, s, "/api/notifications/"+unreadID+"/read")
	assert.Contains(t, body, `"changed":false`)
}

func TestServer_MarkAllRead(t *testing.T) {
	s := newTestServer(t)

	res, body := post(t, s, "/api/notifications/read-all")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"unread_count":0`)

	require.Zero(t, s.store.UnreadCount())
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t)

	// Render the page once so the counter is non-zero.
	get(t, s, "/")

	res, body := get(t, s, "/metrics")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "exampro_ui_page_renders_total 1")
	assert.Contains(t, body, "exampro_ui_ws_clients 0")
}
