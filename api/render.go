package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"taxipark/pkg/logger"
	"taxipark/pkg/paginator"
	"taxipark/storage"
)

// render commits the session and then executes the named template. The
// logged in driver is always available to templates as "user".
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if u := userFrom(c); u != nil {
		data["user"] = u
	}

	if err := h.commitSession(c); err != nil {
		h.log.Error("failed to save session", logger.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.HTML(status, name, data)
}

func (h *Handler) redirect(c *gin.Context, location string) {
	if err := h.commitSession(c); err != nil {
		h.log.Error("failed to save session", logger.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, location)
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", gin.H{"path": c.Request.URL.Path})
}

func (h *Handler) serverError(c *gin.Context, err error) {
	h.log.Error("request failed",
		logger.String("path", c.Request.URL.Path),
		logger.Error(err),
	)
	h.render(c, http.StatusInternalServerError, "500.html", nil)
}

// handleError turns lookup misses and bad page numbers into a 404 and
// everything else into a 500.
func (h *Handler) handleError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, paginator.ErrInvalidPage) {
		h.notFound(c)
		return
	}
	h.serverError(c, err)
}

// pathID reads the :id segment. A non-numeric id is a 404.
func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.notFound(c)
		return 0, false
	}
	return id, true
}

// bindForm fills obj from the url-encoded body.
func (h *Handler) bindForm(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindWith(obj, binding.Form); err != nil {
		h.log.Warning("failed to bind form", logger.Error(err))
		c.Status(http.StatusBadRequest)
		return false
	}
	return true
}
