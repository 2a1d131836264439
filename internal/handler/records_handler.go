package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-harvester/internal/dto"
	"github.com/octobees/contact-harvester/internal/service"
)

// RecordsHandler exposes contact record listing endpoints.
type RecordsHandler struct {
	service *service.RecordsService
}

// NewRecordsHandler creates a new handler instance.
func NewRecordsHandler(service *service.RecordsService) *RecordsHandler {
	return &RecordsHandler{service: service}
}

// List handles GET /records requests. It defaults to the latest run.
func (h *RecordsHandler) List(c echo.Context) error {
	return h.listInternal(c, true)
}

// ListAdmin handles GET /admin/records requests and spans all runs.
func (h *RecordsHandler) ListAdmin(c echo.Context) error {
	return h.listInternal(c, false)
}

func (h *RecordsHandler) listInternal(c echo.Context, latestOnly bool) error {
	filter := dto.RecordFilter{
		Q:           strings.TrimSpace(c.QueryParam("q")),
		Domain:      strings.TrimSpace(c.QueryParam("domain")),
		HasEmail:    parseBoolParam(c.QueryParam("has_email")),
		HasPhone:    parseBoolParam(c.QueryParam("has_phone")),
		HasLinkedIn: parseBoolParam(c.QueryParam("has_linkedin")),
		HasTeam:     parseBoolParam(c.QueryParam("has_team")),
		Page:        parseIntDefault(c.QueryParam("page"), 1),
		PerPage:     parseIntDefault(c.QueryParam("per_page"), 20),
	}

	if latestOnly && strings.TrimSpace(c.QueryParam("all_runs")) == "" {
		filter.LatestRunOnly = true
	}

	if minScoreStr := strings.TrimSpace(c.QueryParam("min_score")); minScoreStr != "" {
		minScore, err := strconv.Atoi(minScoreStr)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid min_score")
		}
		filter.MinScore = &minScore
	}

	if fromStr := strings.TrimSpace(c.QueryParam("harvested_from")); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid harvested_from (use RFC3339)")
		}
		filter.HarvestedFrom = &parsed
	}

	records, err := h.service.ListRecords(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list records")
	}

	return Success(c, http.StatusOK, "records retrieved", records)
}

func parseBoolParam(input string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(input))
	return err == nil && value
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
