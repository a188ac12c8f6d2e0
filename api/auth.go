package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxipark/pkg/forms"
	"taxipark/pkg/logger"
	"taxipark/service"
)

const loginTemplate = "registration/login.html"

func (h *Handler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, loginTemplate, gin.H{"form": forms.NewLoginForm(c.Query("next"))})
}

func (h *Handler) Login(c *gin.Context) {
	f := forms.NewLoginForm("")
	if !h.bindForm(c, f) {
		return
	}
	if f.Next == "" {
		f.Next = c.Query("next")
	}

	if !f.Validate() {
		h.render(c, http.StatusOK, loginTemplate, gin.H{"form": f})
		return
	}

	d, err := h.svc.Auth().Authenticate(c.Request.Context(), f.Username, f.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.serverError(c, err)
			return
		}
		f.InvalidCredentials()
		h.render(c, http.StatusOK, loginTemplate, gin.H{"form": f})
		return
	}

	sessionFrom(c).Login(d.ID)
	h.log.Info("driver logged in", logger.Int64("driver_id", d.ID))
	h.redirect(c, safeNext(f.Next))
}

func (h *Handler) Logout(c *gin.Context) {
	sessionFrom(c).Flush()
	h.redirect(c, loginURL)
}
