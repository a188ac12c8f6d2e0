package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Index(c *gin.Context) {
	visits := sessionFrom(c).IncrementVisits()

	stats, err := h.svc.Index().Stats(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, http.StatusOK, "taxi/index.html", gin.H{
		"num_drivers":       stats.NumDrivers,
		"num_cars":          stats.NumCars,
		"num_manufacturers": stats.NumManufacturers,
		"num_visits":        visits,
	})
}
