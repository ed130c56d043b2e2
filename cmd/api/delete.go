package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/NitinV84/couch-matcher/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (app *webApp) deleteSofaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		app.errorResponse(r, w, http.StatusBadRequest, "invalid sofa id")
		return
	}

	err = app.catalog.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(r, w, err)
		return
	}

	app.respondNoContent(r, w)
}
