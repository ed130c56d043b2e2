package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/NitinV84/couch-matcher/internal/preprocess"
	"github.com/go-playground/validator/v10"
)

func (app *webApp) respondJSON(r *http.Request, w http.ResponseWriter, status int, resp any) {
	jsonResp, err := json.Marshal(resp)
	if err != nil {
		app.serverError(r, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(jsonResp)
	if err != nil {
		app.error(r, err)
	}
}

func (app *webApp) respondNoContent(_ *http.Request, w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func (app *webApp) validationError(r *http.Request, w http.ResponseWriter, err error) {
	app.errorResponse(r, w, http.StatusBadRequest, err.Error())
}

func (app *webApp) serverError(r *http.Request, w http.ResponseWriter, err error) {
	app.error(r, err)

	app.errorResponse(r, w, http.StatusInternalServerError, "Internal Server Error")
}

func (app *webApp) errorResponse(r *http.Request, w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := fmt.Fprintf(w, `{"error": %q}`, message)
	if err != nil {
		app.error(r, err)
	}
}

func (app *webApp) error(r *http.Request, err error) {
	app.log.Error("request failed",
		slog.String("url", r.URL.String()),
		slog.String("err", err.Error()),
	)
}

func (app *webApp) validate(o any) error {
	validate := validator.New()

	return validate.Struct(o)
}

func (app *webApp) notFound(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(r, w, http.StatusNotFound, "404 Not Found")
}

func (app *webApp) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(r, w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// spoolUpload copies a multipart image upload into a temp file owned by the
// caller. The empty string means the field was absent, which some handlers
// treat as a valid request shape.
func (app *webApp) spoolUpload(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", fmt.Errorf("reading %s upload, %w", field, err)
	}
	defer func(file multipart.File) {
		if err := file.Close(); err != nil {
			app.log.Error("closing upload", slog.String("err", err.Error()))
		}
	}(file)

	path, err := preprocess.SaveTemp(file, filepath.Ext(header.Filename))
	if err != nil {
		return "", fmt.Errorf("spooling %s upload, %w", field, err)
	}

	return path, nil
}

// budgetParam parses the optional budget restriction from the query string or
// the form body, query string winning.
func budgetParam(r *http.Request) (*float64, error) {
	raw := r.URL.Query().Get("budget")
	if raw == "" {
		raw = r.FormValue("budget")
	}
	if raw == "" {
		return nil, nil
	}

	budget, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid budget value %q", raw)
	}

	return &budget, nil
}
