package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxipark/pkg/forms"
	"taxipark/service"
)

// serveList renders one page of an entity list filtered by ?text= on
// searchField.
func serveList[T any](h *Handler, c *gin.Context, entity, searchField string, list func(context.Context, service.ListQuery) (*service.ListResult[T], error)) {
	search := forms.NewSearchForm(searchField, c.Query("text"))
	text := search.Text
	if len(search.Errors) > 0 {
		text = ""
	}

	res, err := list(c.Request.Context(), service.ListQuery{Text: text, Page: c.Query("page")})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.render(c, http.StatusOK, "taxi/"+entity+"_list.html", gin.H{
		entity + "_list": res.Objects,
		"object_list":    res.Objects,
		"page_obj":       res.Page,
		"is_paginated":   res.Page.IsPaginated(),
		"search_field":   searchField,
		"search_form":    search,
	})
}
