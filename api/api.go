// Package api is the server-rendered web front of the fleet manager.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taxipark/config"
	"taxipark/pkg/logger"
	"taxipark/pkg/session"
	"taxipark/service"
)

const loginURL = "/accounts/login/"

type Handler struct {
	svc      service.IServiceManager
	sessions session.IStore
	cfg      *config.Config
	log      logger.ILogger
}

func NewHandler(cfg *config.Config, svc service.IServiceManager, sessions session.IStore, log logger.ILogger) *Handler {
	return &Handler{svc: svc, sessions: sessions, cfg: cfg, log: log}
}

// NewEngine wires middleware, templates and every route.
func NewEngine(cfg *config.Config, svc service.IServiceManager, sessions session.IStore, log logger.ILogger) (*gin.Engine, error) {
	h := NewHandler(cfg, svc, sessions, log)

	tmpl, err := loadTemplates(cfg.TemplatesDir)
	if err != nil {
		log.Error("failed to load templates", logger.Error(err))
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.SetHTMLTemplate(tmpl)
	r.NoRoute(h.notFound)

	r.Use(h.sessionMiddleware())

	r.GET(loginURL, h.LoginPage)
	r.POST(loginURL, h.Login)
	r.GET("/accounts/logout/", h.Logout)
	r.POST("/accounts/logout/", h.Logout)

	auth := r.Group("/", h.loginRequired())
	{
		auth.GET("/", h.Index)

		auth.GET("/manufacturers/", h.ManufacturerList)
		auth.GET("/manufacturers/create/", h.ManufacturerCreatePage)
		auth.POST("/manufacturers/create/", h.ManufacturerCreate)
		auth.GET("/manufacturers/:id/update/", h.ManufacturerUpdatePage)
		auth.POST("/manufacturers/:id/update/", h.ManufacturerUpdate)
		auth.GET("/manufacturers/:id/delete/", h.ManufacturerDeletePage)
		auth.POST("/manufacturers/:id/delete/", h.ManufacturerDelete)

		auth.GET("/cars/", h.CarList)
		auth.GET("/cars/create/", h.CarCreatePage)
		auth.POST("/cars/create/", h.CarCreate)
		auth.GET("/cars/:id/", h.CarDetail)
		auth.GET("/cars/:id/update/", h.CarUpdatePage)
		auth.POST("/cars/:id/update/", h.CarUpdate)
		auth.GET("/cars/:id/delete/", h.CarDeletePage)
		auth.POST("/cars/:id/delete/", h.CarDelete)
		auth.POST("/cars/:id/toggle-assign/", h.CarToggleAssign)

		auth.GET("/drivers/", h.DriverList)
		auth.GET("/drivers/create/", h.DriverCreatePage)
		auth.POST("/drivers/create/", h.DriverCreate)
		auth.GET("/drivers/:id/", h.DriverDetail)
		auth.GET("/drivers/:id/update/", h.DriverUpdatePage)
		auth.POST("/drivers/:id/update/", h.DriverUpdate)
		auth.GET("/drivers/:id/delete/", h.DriverDeletePage)
		auth.POST("/drivers/:id/delete/", h.DriverDelete)
	}

	return r, nil
}

// NewServer wraps the engine with the configured timeouts.
func NewServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
