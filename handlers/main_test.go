package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"gostore/auth"
	"gostore/catalog"
	"gostore/config"
	"gostore/handlers"
)

const (
	testAdminUser = "admin"
	testAdminPass = "admin123"
)

func newTestRouter(t *testing.T) (*gin.Engine, *catalog.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := catalog.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Init())

	creds, err := auth.NewStatic(testAdminUser, testAdminPass)
	require.NoError(t, err)

	cfg := config.Config{
		SessionSecret: "test-secret",
		SessionName:   "test_session",
	}
	r := handlers.NewRouter(cfg, store, creds, zerolog.Nop(), "../templates/*")
	return r, store
}

// client replays session cookies across requests, standing in for a
// browser.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router, cookies: make(map[string]*http.Cookie)}
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, nil)
}

func (c *client) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, path, form)
}

func (c *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}
	return w
}

// login authenticates the client as the test admin.
func (c *client) login() {
	c.t.Helper()
	w := c.postForm("/admin/login", url.Values{
		"username": {testAdminUser},
		"password": {testAdminPass},
	})
	require.Equal(c.t, http.StatusFound, w.Code)
}
