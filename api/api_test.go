package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxipark/config"
	"taxipark/pkg/logger"
	"taxipark/pkg/models"
	"taxipark/pkg/notify"
	"taxipark/pkg/session"
	"taxipark/service"
	"taxipark/storage/mocks"
)

var anyCtx = mock.Anything

var testUser = &models.Driver{
	ID:            100,
	Username:      "admin.user",
	FirstName:     "Admin",
	LastName:      "User",
	LicenseNumber: "ADM12345",
}

// renderRecorder remembers which template a request rendered and with what
// data, then hands off to the real renderer.
type renderRecorder struct {
	inner render.HTMLRender
	name  string
	data  gin.H
}

func (r *renderRecorder) Instance(name string, data interface{}) render.Render {
	r.name = name
	r.data, _ = data.(gin.H)
	return r.inner.Instance(name, data)
}

type testApp struct {
	engine   *gin.Engine
	stg      *mocks.Storage
	sessions session.IStore
	rec      *renderRecorder
	cookie   *http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := logger.NewNop()
	cfg := &config.Config{SessionCookieName: "sessionid", SessionTTL: time.Hour, PageSize: 5}
	stg := mocks.NewStorage(t)
	sessions := session.NewRedisStore(client, cfg.SessionTTL, log)

	engine, err := NewEngine(cfg, service.New(stg, notify.Nop{}, log, cfg.PageSize), sessions, log)
	require.NoError(t, err)

	rec := &renderRecorder{inner: engine.HTMLRender}
	engine.HTMLRender = rec

	return &testApp{engine: engine, stg: stg, sessions: sessions, rec: rec}
}

// login stores an authenticated session for testUser and sends its cookie
// with every following request.
func (a *testApp) login(t *testing.T) {
	t.Helper()

	s := session.New()
	s.Login(testUser.ID)
	require.NoError(t, a.sessions.Save(context.Background(), s))
	a.cookie = &http.Cookie{Name: "sessionid", Value: s.ID}

	a.stg.Drivers.On("GetByID", anyCtx, testUser.ID).Return(testUser, nil).Maybe()
}

func (a *testApp) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}

	a.rec.name, a.rec.data = "", nil
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name != "sessionid" {
			continue
		}
		if ck.Value == "" || ck.MaxAge < 0 {
			a.cookie = nil
		} else {
			a.cookie = &http.Cookie{Name: ck.Name, Value: ck.Value}
		}
	}
	return w
}

func (a *testApp) get(target string) *httptest.ResponseRecorder {
	return a.do(http.MethodGet, target, nil)
}

func (a *testApp) post(target string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return a.do(http.MethodPost, target, form)
}
