package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-harvester/internal/service"
)

// SeedUploadHandler handles CSV seed ingestion for administrators. Each
// uploaded row becomes a harvest candidate that is scraped immediately.
type SeedUploadHandler struct {
	harvest *service.HarvestService
}

// NewSeedUploadHandler wires a handler backed by the harvest service.
func NewSeedUploadHandler(harvest *service.HarvestService) *SeedUploadHandler {
	return &SeedUploadHandler{harvest: harvest}
}

// UploadCSV handles POST /admin/seed-csv requests.
func (h *SeedUploadHandler) UploadCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "missing csv file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "unable to open file")
	}
	defer file.Close()

	candidates, err := service.ParseSeedCSV(file)
	if err != nil {
		var validationErr service.CSVValidationError
		if errors.As(err, &validationErr) {
			return Error(c, http.StatusBadRequest, validationErr.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to process csv")
	}

	resp, err := h.harvest.RunSeeds(c.Request().Context(), candidates, nil)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "seed harvest failed")
	}

	return Success(c, http.StatusOK, "seed csv harvested", resp)
}
