package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-harvester/internal/dto"
	"github.com/octobees/contact-harvester/internal/service"
)

// HarvestHandler exposes the harvest run endpoint.
type HarvestHandler struct {
	harvest *service.HarvestService
}

// NewHarvestHandler constructs a harvest handler.
func NewHarvestHandler(harvest *service.HarvestService) *HarvestHandler {
	return &HarvestHandler{harvest: harvest}
}

// Run handles POST /harvest requests. The run executes synchronously;
// records are persisted one by one while it progresses, so a failed run
// still leaves its completed records behind.
func (h *HarvestHandler) Run(c echo.Context) error {
	var req dto.HarvestRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	if req.MaxCompanies != nil && *req.MaxCompanies < 0 {
		return Error(c, http.StatusBadRequest, "max_companies must not be negative")
	}

	resp, err := h.harvest.Run(c.Request().Context(), req)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "harvest run failed")
	}

	return Success(c, http.StatusOK, "harvest completed", resp)
}
