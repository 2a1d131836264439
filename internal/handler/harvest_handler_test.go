package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-harvester/internal/config"
	"github.com/octobees/contact-harvester/internal/dto"
	"github.com/octobees/contact-harvester/internal/entity"
	"github.com/octobees/contact-harvester/internal/harvest"
	"github.com/octobees/contact-harvester/internal/service"
)

type recordsRepoForHandler struct {
	inserted []*entity.ContactRecord
	insert   func(ctx context.Context, record *entity.ContactRecord) error
	list     func(ctx context.Context, filter dto.RecordFilter) ([]entity.ContactRecord, error)
}

func (r *recordsRepoForHandler) Insert(ctx context.Context, record *entity.ContactRecord) error {
	if r.insert != nil {
		return r.insert(ctx, record)
	}
	r.inserted = append(r.inserted, record)
	return nil
}

func (r *recordsRepoForHandler) List(ctx context.Context, filter dto.RecordFilter) ([]entity.ContactRecord, error) {
	if r.list != nil {
		return r.list(ctx, filter)
	}
	return nil, errors.New("not implemented")
}

type staticSearcher []harvest.Candidate

func (s staticSearcher) Search(_ context.Context, _ string, _ int) ([]harvest.Candidate, error) {
	return s, nil
}

func handlerTestConfig() *config.Config {
	return &config.Config{
		SearchQueries:    []string{"default query"},
		MaxCompanies:     10,
		FetchTimeout:     5 * time.Second,
		TeamFetchTimeout: 5 * time.Second,
		PhoneRegion:      "NL",
	}
}

func newHarvestService(repo *recordsRepoForHandler, candidates []harvest.Candidate) *service.HarvestService {
	return service.NewHarvestService(handlerTestConfig(), repo).WithSearcherFactory(
		func(ctx context.Context, fetcher *harvest.Fetcher) (harvest.Searcher, error) {
			return staticSearcher(candidates), nil
		})
}

func TestHarvestHandlerRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>mail info@acme.nl</p></body></html>`)
	}))
	defer srv.Close()

	repo := &recordsRepoForHandler{}
	h := NewHarvestHandler(newHarvestService(repo, []harvest.Candidate{{Name: "Acme", URL: srv.URL}}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/harvest", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Run(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Status string              `json:"status"`
		Data   dto.HarvestResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Status != "success" || payload.Data.Records != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected record persisted, got %d", len(repo.inserted))
	}
}

func TestHarvestHandlerRunRejectsBadPayload(t *testing.T) {
	h := NewHarvestHandler(newHarvestService(&recordsRepoForHandler{}, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/harvest", strings.NewReader(`{"max_companies": -3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Run(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHarvestHandlerRunReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>mail info@acme.nl</p></body></html>`)
	}))
	defer srv.Close()

	repo := &recordsRepoForHandler{insert: func(ctx context.Context, record *entity.ContactRecord) error {
		return errors.New("db down")
	}}
	h := NewHarvestHandler(newHarvestService(repo, []harvest.Candidate{{Name: "Acme", URL: srv.URL}}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/harvest", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Run(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
