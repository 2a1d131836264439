package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/octobees/contact-harvester/internal/dto"
	"github.com/octobees/contact-harvester/internal/entity"
)

func TestRecordsServiceListDefaults(t *testing.T) {
	var captured dto.RecordFilter
	repo := &mockRecordsRepository{list: func(ctx context.Context, filter dto.RecordFilter) ([]entity.ContactRecord, error) {
		captured = filter
		return []entity.ContactRecord{{CompanyName: "Acme"}}, nil
	}}

	svc := NewRecordsService(repo)
	records, err := svc.ListRecords(context.Background(), dto.RecordFilter{PerPage: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("unexpected records: %+v", records)
	}
	if captured.Page != 1 || captured.PerPage != 100 {
		t.Fatalf("pagination defaults not applied: %+v", captured)
	}
}

func TestParseSeedCSV(t *testing.T) {
	payload := "company,website,notes\nAcme,acme.nl,fine\n ,missing.nl,\nSeed BV,https://seed.nl,\n"

	candidates, err := ParseSeedCSV(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %#v", candidates)
	}
	if candidates[0].Name != "Acme" || candidates[0].URL != "https://acme.nl" {
		t.Fatalf("expected scheme added to bare domain, got %+v", candidates[0])
	}
	if candidates[1].URL != "https://seed.nl" {
		t.Fatalf("unexpected candidate: %+v", candidates[1])
	}
}

func TestParseSeedCSVValidation(t *testing.T) {
	var valErr CSVValidationError

	_, err := ParseSeedCSV(strings.NewReader(""))
	if !errors.As(err, &valErr) {
		t.Fatalf("expected validation error for empty file, got %v", err)
	}

	_, err = ParseSeedCSV(strings.NewReader("name,url\nAcme,acme.nl\n"))
	if !errors.As(err, &valErr) || !strings.Contains(valErr.Message, "company") {
		t.Fatalf("expected missing column error, got %v", err)
	}

	_, err = ParseSeedCSV(strings.NewReader("company,website\n,\n"))
	if !errors.As(err, &valErr) {
		t.Fatalf("expected no-usable-rows error, got %v", err)
	}
}
