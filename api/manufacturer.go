package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxipark/pkg/forms"
)

const manufacturersURL = "/manufacturers/"

func (h *Handler) ManufacturerList(c *gin.Context) {
	serveList(h, c, "manufacturer", "name", h.svc.Manufacturer().List)
}

func (h *Handler) ManufacturerCreatePage(c *gin.Context) {
	h.render(c, http.StatusOK, "taxi/manufacturer_form.html", gin.H{"form": forms.NewManufacturerForm(nil)})
}

func (h *Handler) ManufacturerCreate(c *gin.Context) {
	f := forms.NewManufacturerForm(nil)
	if !h.bindForm(c, f) {
		return
	}

	if _, err := h.svc.Manufacturer().Create(c.Request.Context(), f); err != nil {
		if errors.Is(err, forms.ErrInvalid) {
			h.render(c, http.StatusOK, "taxi/manufacturer_form.html", gin.H{"form": f})
			return
		}
		h.handleError(c, err)
		return
	}
	h.redirect(c, manufacturersURL)
}

func (h *Handler) ManufacturerUpdatePage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	m, err := h.svc.Manufacturer().Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.render(c, http.StatusOK, "taxi/manufacturer_form.html", gin.H{
		"form":      forms.NewManufacturerForm(m),
		"object_id": id,
	})
}

func (h *Handler) ManufacturerUpdate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	f := forms.NewManufacturerForm(nil)
	if !h.bindForm(c, f) {
		return
	}

	if _, err := h.svc.Manufacturer().Update(c.Request.Context(), id, f); err != nil {
		if errors.Is(err, forms.ErrInvalid) {
			h.render(c, http.StatusOK, "taxi/manufacturer_form.html", gin.H{"form": f, "object_id": id})
			return
		}
		h.handleError(c, err)
		return
	}
	h.redirect(c, manufacturersURL)
}

func (h *Handler) ManufacturerDeletePage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	m, err := h.svc.Manufacturer().Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.render(c, http.StatusOK, "taxi/manufacturer_confirm_delete.html", gin.H{"manufacturer": m})
}

func (h *Handler) ManufacturerDelete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Manufacturer().Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	h.redirect(c, manufacturersURL)
}
