package api

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxipark/pkg/forms"
	"taxipark/pkg/models"
	"taxipark/storage"
)

var toyota = &models.Manufacturer{ID: 1, Name: "Toyota", Country: "Japan"}

func cars(from, n int) []*models.Car {
	out := make([]*models.Car, 0, n)
	for i := from; i < from+n; i++ {
		out = append(out, &models.Car{ID: int64(i), Model: fmt.Sprintf("Model%d", i), ManufacturerID: 1, Manufacturer: toyota})
	}
	return out
}

func TestCarListPaginated(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.stg.Cars.On("Count", anyCtx, "").Return(7, nil)
	app.stg.Cars.On("Search", anyCtx, "", 5, 0).Return(cars(1, 5), nil)

	w := app.get("/cars/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "taxi/car_list.html", app.rec.name)
	assert.Equal(t, true, app.rec.data["is_paginated"])
	assert.Len(t, app.rec.data["car_list"], 5)
	assert.Equal(t, "model", app.rec.data["search_field"])
	assert.IsType(t, &forms.SearchForm{}, app.rec.data["search_form"])
}

func TestCarListSearchKeepsTextInPageLinks(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.stg.Cars.On("Count", anyCtx, "model").Return(7, nil)
	app.stg.Cars.On("Search", anyCtx, "model", 5, 0).Return(cars(1, 5), nil)

	w := app.get("/cars/?text=model")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "?page=2&amp;text=model")
}

func TestCarDetail(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	car := &models.Car{
		ID: 1, Model: "Corolla", ManufacturerID: 1, Manufacturer: toyota,
		DriverIDs: []int64{testUser.ID}, Drivers: []*models.Driver{testUser},
	}
	app.stg.Cars.On("GetByID", anyCtx, int64(1)).Return(car, nil)

	w := app.get("/cars/1/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "taxi/car_detail.html", app.rec.name)
	assert.Equal(t, car, app.rec.data["car"])
	assert.Contains(t, w.Body.String(), "Delete me from this car")
}

func TestCarDetailNotFound(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.stg.Cars.On("GetByID", anyCtx, int64(5)).Return(nil, storage.ErrNotFound)

	w := app.get("/cars/5/")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCarCreate(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.stg.Manufacturers.On("GetAll", anyCtx).Return([]*models.Manufacturer{toyota}, nil)
	app.stg.Drivers.On("GetAll", anyCtx).Return([]*models.Driver{testUser}, nil)

	w := app.get("/cars/create/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "taxi/car_form.html", app.rec.name)
	assert.IsType(t, &forms.CarForm{}, app.rec.data["form"])
	assert.Len(t, app.rec.data["manufacturers"], 1)

	app.stg.Manufacturers.On("GetByID", anyCtx, int64(1)).Return(toyota, nil)
	app.stg.Drivers.On("ExistingIDs", anyCtx, []int64{testUser.ID}).Return([]int64{testUser.ID}, nil)
	app.stg.Cars.On("Create", anyCtx, mock.MatchedBy(func(c *models.Car) bool {
		return c.Model == "Corolla" && c.ManufacturerID == 1 && len(c.DriverIDs) == 1
	})).Return(&models.Car{ID: 3, Model: "Corolla", ManufacturerID: 1}, nil)

	w = app.post("/cars/create/", url.Values{
		"model":        {"Corolla"},
		"manufacturer": {"1"},
		"drivers":      {"100"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cars/", w.Header().Get("Location"))
}

func TestCarCreateInvalidRendersChoices(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.stg.Manufacturers.On("GetAll", anyCtx).Return([]*models.Manufacturer{toyota}, nil)
	app.stg.Drivers.On("GetAll", anyCtx).Return([]*models.Driver{testUser}, nil)

	w := app.post("/cars/create/", url.Values{"model": {"Corolla"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "taxi/car_form.html", app.rec.name)

	f := app.rec.data["form"].(*forms.CarForm)
	assert.True(t, f.Errors.Has("manufacturer"))
	assert.Len(t, app.rec.data["drivers"], 1)
}

func TestCarUpdatePage(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	car := &models.Car{ID: 2, Model: "Camry", ManufacturerID: 1, DriverIDs: []int64{testUser.ID}}
	app.stg.Cars.On("GetByID", anyCtx, int64(2)).Return(car, nil)
	app.stg.Manufacturers.On("GetAll", anyCtx).Return([]*models.Manufacturer{toyota}, nil)
	app.stg.Drivers.On("GetAll", anyCtx).Return([]*models.Driver{testUser}, nil)

	w := app.get("/cars/2/update/")
	assert.Equal(t, http.StatusOK, w.Code)

	f, ok := app.rec.data["form"].(*forms.CarForm)
	require.True(t, ok)
	assert.Equal(t, "Camry", f.Model)
	assert.True(t, f.Selected(testUser.ID))
	assert.Equal(t, int64(2), app.rec.data["object_id"])
}

func TestCarDelete(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.stg.Cars.On("GetByID", anyCtx, int64(2)).Return(&models.Car{ID: 2, Model: "Camry"}, nil)
	app.stg.Cars.On("Delete", anyCtx, int64(2)).Return(nil)

	w := app.get("/cars/2/delete/")
	assert.Equal(t, "taxi/car_confirm_delete.html", app.rec.name)

	w = app.post("/cars/2/delete/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cars/", w.Header().Get("Location"))
}

func TestCarToggleAssign(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.stg.Cars.On("ToggleDriver", anyCtx, int64(1), testUser.ID).Return(true, nil)

	w := app.post("/cars/1/toggle-assign/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cars/1/", w.Header().Get("Location"))
}

func TestCarToggleAssignMissingCar(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.stg.Cars.On("ToggleDriver", anyCtx, int64(9), testUser.ID).Return(false, storage.ErrNotFound)

	w := app.post("/cars/9/toggle-assign/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCarCreateBadDriverShowsFieldError(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.stg.Manufacturers.On("GetAll", anyCtx).Return([]*models.Manufacturer{toyota}, nil)
	app.stg.Drivers.On("GetAll", anyCtx).Return([]*models.Driver{testUser}, nil)

	w := app.post("/cars/create/", url.Values{
		"model":        {"Corolla"},
		"manufacturer": {"1"},
		"drivers":      {"x"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, app.rec.data["form"].(*forms.CarForm).Errors.Has("drivers"))
	assert.Contains(t, w.Body.String(), "Select a valid choice.")
}

func TestCarToggleAssignRedirectsToDetail(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.stg.Cars.On("ToggleDriver", anyCtx, int64(12345), testUser.ID).Return(false, nil)

	w := app.post("/cars/12345/toggle-assign/", nil)
	assert.Equal(t, "/cars/12345/", w.Header().Get("Location"))
}
