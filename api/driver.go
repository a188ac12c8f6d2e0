package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxipark/pkg/forms"
)

const driversURL = "/drivers/"

func (h *Handler) DriverList(c *gin.Context) {
	serveList(h, c, "driver", "username", h.svc.Driver().List)
}

func (h *Handler) DriverDetail(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	d, err := h.svc.Driver().Detail(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.render(c, http.StatusOK, "taxi/driver_detail.html", gin.H{"driver": d})
}

func (h *Handler) DriverCreatePage(c *gin.Context) {
	h.render(c, http.StatusOK, "taxi/driver_form.html", gin.H{"form": forms.NewDriverCreationForm()})
}

func (h *Handler) DriverCreate(c *gin.Context) {
	f := forms.NewDriverCreationForm()
	if !h.bindForm(c, f) {
		return
	}

	d, err := h.svc.Driver().Create(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, forms.ErrInvalid) {
			h.render(c, http.StatusOK, "taxi/driver_form.html", gin.H{"form": f})
			return
		}
		h.handleError(c, err)
		return
	}
	h.redirect(c, d.AbsoluteURL())
}

func (h *Handler) DriverUpdatePage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	d, err := h.svc.Driver().Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.render(c, http.StatusOK, "taxi/driver_form.html", gin.H{
		"form":      forms.NewDriverLicenseUpdateForm(d),
		"object_id": id,
	})
}

func (h *Handler) DriverUpdate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	f := forms.NewDriverLicenseUpdateForm(nil)
	if !h.bindForm(c, f) {
		return
	}

	if _, err := h.svc.Driver().UpdateLicense(c.Request.Context(), id, f); err != nil {
		if errors.Is(err, forms.ErrInvalid) {
			h.render(c, http.StatusOK, "taxi/driver_form.html", gin.H{"form": f, "object_id": id})
			return
		}
		h.handleError(c, err)
		return
	}
	h.redirect(c, driversURL)
}

func (h *Handler) DriverDeletePage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	d, err := h.svc.Driver().Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.render(c, http.StatusOK, "taxi/driver_confirm_delete.html", gin.H{"driver": d})
}

func (h *Handler) DriverDelete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Driver().Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	h.redirect(c, driversURL)
}
