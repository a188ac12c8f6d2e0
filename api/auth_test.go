package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxipark/pkg/forms"
	"taxipark/pkg/models"
	"taxipark/pkg/session"
	"taxipark/service"
	"taxipark/storage"
)

func TestLoginPage(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/accounts/login/?next=/cars/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "registration/login.html", app.rec.name)

	f, ok := app.rec.data["form"].(*forms.LoginForm)
	require.True(t, ok)
	assert.Equal(t, "/cars/", f.Next)
}

func TestLoginSuccess(t *testing.T) {
	app := newTestApp(t)

	hash, err := service.HashPassword("test1234")
	require.NoError(t, err)
	app.stg.Drivers.On("GetByUsername", anyCtx, "admin.user").
		Return(&models.Driver{ID: testUser.ID, Username: "admin.user", PasswordHash: hash}, nil)

	w := app.post("/accounts/login/", url.Values{
		"username": {"admin.user"},
		"password": {"test1234"},
		"next":     {"/cars/"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cars/", w.Header().Get("Location"))
	require.NotNil(t, app.cookie)

	s, err := app.sessions.Get(context.Background(), app.cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, s.UserID())
}

func TestLoginUnsafeNext(t *testing.T) {
	app := newTestApp(t)

	hash, err := service.HashPassword("test1234")
	require.NoError(t, err)
	app.stg.Drivers.On("GetByUsername", anyCtx, "admin.user").
		Return(&models.Driver{ID: testUser.ID, Username: "admin.user", PasswordHash: hash}, nil)

	w := app.post("/accounts/login/", url.Values{
		"username": {"admin.user"},
		"password": {"test1234"},
		"next":     {"//evil.example.com/"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	hash, err := service.HashPassword("test1234")
	require.NoError(t, err)
	app.stg.Drivers.On("GetByUsername", anyCtx, "admin.user").
		Return(&models.Driver{ID: testUser.ID, Username: "admin.user", PasswordHash: hash}, nil)

	w := app.post("/accounts/login/", url.Values{
		"username": {"admin.user"},
		"password": {"wrong-pass"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "registration/login.html", app.rec.name)
	assert.Nil(t, app.cookie)

	f := app.rec.data["form"].(*forms.LoginForm)
	assert.True(t, f.Errors.Has(forms.NonField))
}

func TestLoginUnknownUser(t *testing.T) {
	app := newTestApp(t)
	app.stg.Drivers.On("GetByUsername", anyCtx, "ghost").Return(nil, storage.ErrNotFound)

	w := app.post("/accounts/login/", url.Values{"username": {"ghost"}, "password": {"whatever1"}})
	assert.Equal(t, http.StatusOK, w.Code)

	f := app.rec.data["form"].(*forms.LoginForm)
	assert.True(t, f.Errors.Has(forms.NonField))
}

func TestLoginMissingFields(t *testing.T) {
	app := newTestApp(t)

	w := app.post("/accounts/login/", url.Values{})
	assert.Equal(t, http.StatusOK, w.Code)

	f := app.rec.data["form"].(*forms.LoginForm)
	assert.True(t, f.Errors.Has("username"))
	assert.True(t, f.Errors.Has("password"))
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	old := app.cookie.Value

	w := app.post("/accounts/logout/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accounts/login/", w.Header().Get("Location"))
	assert.Nil(t, app.cookie)

	_, err := app.sessions.Get(context.Background(), old)
	assert.ErrorIs(t, err, session.ErrNotFound)
}
