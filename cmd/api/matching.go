package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/NitinV84/couch-matcher/internal/bgremoval"
	"github.com/NitinV84/couch-matcher/internal/domain"
)

// matchingHandler serves visual similarity queries. Without an image the
// request degrades to a plain budget listing, so clients can reuse the
// endpoint for the "show me anything affordable" case.
func (app *webApp) matchingHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		app.errorResponse(r, w, http.StatusBadRequest, "malformed multipart form")
		return
	}

	budget, err := budgetParam(r)
	if err != nil {
		app.validationError(r, w, err)
		return
	}

	imagePath, err := app.spoolUpload(r, "image")
	if err != nil {
		app.serverError(r, w, err)
		return
	}

	if imagePath == "" {
		sofas, err := app.catalog.List(r.Context(), budget)
		if err != nil {
			app.serverError(r, w, err)
			return
		}
		app.respondJSON(r, w, http.StatusOK, sofas)
		return
	}
	defer func(name string) {
		if err := os.Remove(name); err != nil {
			app.log.Error("removing temp file", slog.String("file", name), slog.String("err", err.Error()))
		}
	}(imagePath)

	matches, err := app.catalog.Search(r.Context(), budget, imagePath)
	if err != nil {
		if errors.Is(err, domain.ErrBadImage) {
			app.errorResponse(r, w, http.StatusBadRequest, "uploaded file is not a decodable image")
			return
		}
		if errors.Is(err, domain.ErrQuotaExceeded) {
			app.errorResponse(r, w, http.StatusPaymentRequired, "background removal quota exceeded")
			return
		}
		if errors.Is(err, bgremoval.ErrBadResponse) {
			app.errorResponse(r, w, http.StatusServiceUnavailable, "background removal unavailable")
			return
		}
		app.serverError(r, w, err)
		return
	}

	if len(matches) == 0 {
		app.respondJSON(r, w, http.StatusNotFound, map[string]string{"message": "No match data found"})
		return
	}

	app.respondJSON(r, w, http.StatusOK, matches)
}
