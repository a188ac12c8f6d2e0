package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taxipark/pkg/forms"
)

const carsURL = "/cars/"

func (h *Handler) CarList(c *gin.Context) {
	serveList(h, c, "car", "model", h.svc.Car().List)
}

func (h *Handler) CarDetail(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	car, err := h.svc.Car().Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.render(c, http.StatusOK, "taxi/car_detail.html", gin.H{"car": car})
}

// renderCarForm adds the manufacturer and driver choices to the form page.
func (h *Handler) renderCarForm(c *gin.Context, f *forms.CarForm, objectID int64) {
	ctx := c.Request.Context()

	manufacturers, err := h.svc.Manufacturer().All(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}
	drivers, err := h.svc.Driver().All(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}

	data := gin.H{
		"form":          f,
		"manufacturers": manufacturers,
		"drivers":       drivers,
	}
	if objectID != 0 {
		data["object_id"] = objectID
	}
	h.render(c, http.StatusOK, "taxi/car_form.html", data)
}

func (h *Handler) CarCreatePage(c *gin.Context) {
	h.renderCarForm(c, forms.NewCarForm(nil), 0)
}

func (h *Handler) CarCreate(c *gin.Context) {
	f := forms.NewCarForm(nil)
	if !h.bindForm(c, f) {
		return
	}

	if _, err := h.svc.Car().Create(c.Request.Context(), f); err != nil {
		if errors.Is(err, forms.ErrInvalid) {
			h.renderCarForm(c, f, 0)
			return
		}
		h.handleError(c, err)
		return
	}
	h.redirect(c, carsURL)
}

func (h *Handler) CarUpdatePage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	car, err := h.svc.Car().Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.renderCarForm(c, forms.NewCarForm(car), id)
}

func (h *Handler) CarUpdate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	f := forms.NewCarForm(nil)
	if !h.bindForm(c, f) {
		return
	}

	if _, err := h.svc.Car().Update(c.Request.Context(), id, f); err != nil {
		if errors.Is(err, forms.ErrInvalid) {
			h.renderCarForm(c, f, id)
			return
		}
		h.handleError(c, err)
		return
	}
	h.redirect(c, carsURL)
}

func (h *Handler) CarDeletePage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	car, err := h.svc.Car().Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.render(c, http.StatusOK, "taxi/car_confirm_delete.html", gin.H{"car": car})
}

func (h *Handler) CarDelete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Car().Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	h.redirect(c, carsURL)
}

// CarToggleAssign adds the current driver to the car, or removes them if
// they already drive it.
func (h *Handler) CarToggleAssign(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	user := userFrom(c)

	if _, err := h.svc.Car().ToggleAssign(c.Request.Context(), id, user.ID); err != nil {
		h.handleError(c, err)
		return
	}
	h.redirect(c, carsURL+strconv.FormatInt(id, 10)+"/")
}
