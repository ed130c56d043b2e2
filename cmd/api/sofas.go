package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/NitinV84/couch-matcher/internal/catalog"
)

const maxUploadSize = 32 << 20

func (app *webApp) listSofasHandler(w http.ResponseWriter, r *http.Request) {
	budget, err := budgetParam(r)
	if err != nil {
		app.validationError(r, w, err)
		return
	}

	sofas, err := app.catalog.List(r.Context(), budget)
	if err != nil {
		app.serverError(r, w, err)
		return
	}

	app.respondJSON(r, w, http.StatusOK, sofas)
}

func (app *webApp) createSofaHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		app.errorResponse(r, w, http.StatusBadRequest, "malformed multipart form")
		return
	}

	req := struct {
		Name        string  `validate:"required"`
		Description string
		Price       float64 `validate:"gt=0"`
		Discount    float64 `validate:"min=0,max=100"`
		Quantity    int     `validate:"min=0"`
	}{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	var err error
	req.Price, err = parseFloatField(r, "price")
	if err != nil {
		app.validationError(r, w, err)
		return
	}
	req.Discount, err = parseFloatField(r, "discount")
	if err != nil {
		app.validationError(r, w, err)
		return
	}
	if raw := r.FormValue("quantity"); raw != "" {
		req.Quantity, err = strconv.Atoi(raw)
		if err != nil {
			app.validationError(r, w, err)
			return
		}
	}

	if err := app.validate(req); err != nil {
		app.validationError(r, w, err)
		return
	}

	imagePath, err := app.spoolUpload(r, "image")
	if err != nil {
		app.serverError(r, w, err)
		return
	}
	if imagePath == "" {
		app.errorResponse(r, w, http.StatusBadRequest, "image is required")
		return
	}
	defer func(name string) {
		if err := os.Remove(name); err != nil {
			app.log.Error("removing temp file", slog.String("file", name), slog.String("err", err.Error()))
		}
	}(imagePath)

	sofa, err := app.catalog.Create(r.Context(), catalog.NewSofa{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		Quantity:    req.Quantity,
	}, imagePath)
	if err != nil {
		app.serverError(r, w, err)
		return
	}

	app.respondJSON(r, w, http.StatusCreated, sofa)
}

func parseFloatField(r *http.Request, field string) (float64, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseFloat(raw, 64)
}
