package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taxipark/pkg/logger"
	"taxipark/pkg/models"
	"taxipark/pkg/session"
	"taxipark/storage"
)

const (
	ctxSession = "session"
	ctxUser    = "user"
)

func requestLogger(log logger.ILogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}

// sessionMiddleware loads the session named by the cookie, or starts a new
// one. Nothing is written back until commitSession runs.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var s *session.Session

		if id, err := c.Cookie(h.cfg.SessionCookieName); err == nil && id != "" {
			s, err = h.sessions.Get(c.Request.Context(), id)
			if err != nil && !errors.Is(err, session.ErrNotFound) {
				h.serverError(c, err)
				c.Abort()
				return
			}
		}
		if s == nil {
			s = session.New()
		}

		c.Set(ctxSession, s)
		c.Next()
	}
}

// loginRequired lets only requests with a live driver behind the session
// through; everyone else is sent to the login page.
func (h *Handler) loginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessionFrom(c)
		if !s.IsAuthenticated() {
			h.redirectToLogin(c)
			c.Abort()
			return
		}

		d, err := h.svc.Auth().CurrentDriver(c.Request.Context(), s.UserID())
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				s.Flush()
				h.redirectToLogin(c)
			} else {
				h.serverError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(ctxUser, d)
		c.Next()
	}
}

func (h *Handler) redirectToLogin(c *gin.Context) {
	h.redirect(c, loginURL+"?next="+escapeNext(c.Request.URL.RequestURI()))
}

// escapeNext query-escapes the target but leaves slashes readable.
func escapeNext(target string) string {
	return strings.ReplaceAll(url.QueryEscape(target), "%2F", "/")
}

// safeNext only follows local absolute paths.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return "/"
	}
	return next
}

func sessionFrom(c *gin.Context) *session.Session {
	if v, ok := c.Get(ctxSession); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return session.New()
}

func userFrom(c *gin.Context) *models.Driver {
	if v, ok := c.Get(ctxUser); ok {
		if d, ok := v.(*models.Driver); ok {
			return d
		}
	}
	return nil
}

// commitSession persists pending session changes and updates the cookie. It
// must run before the response body is written.
func (h *Handler) commitSession(c *gin.Context) error {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil
	}
	s := v.(*session.Session)
	ctx := c.Request.Context()

	c.SetSameSite(http.SameSiteLaxMode)

	if s.Flushed() {
		if prev := s.Previous(); prev != "" {
			if err := h.sessions.Delete(ctx, prev); err != nil {
				return err
			}
		}
		s.MarkSaved()
		c.SetCookie(h.cfg.SessionCookieName, "", -1, "/", "", h.cfg.SessionCookieSecure, true)
		return nil
	}

	if !s.Modified() {
		return nil
	}
	if err := h.sessions.Save(ctx, s); err != nil {
		return err
	}
	c.SetCookie(h.cfg.SessionCookieName, s.ID, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.SessionCookieSecure, true)
	return nil
}
