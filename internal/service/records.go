package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/octobees/contact-harvester/internal/dto"
	"github.com/octobees/contact-harvester/internal/entity"
	"github.com/octobees/contact-harvester/internal/harvest"
	"github.com/octobees/contact-harvester/internal/repository"
)

// RecordsService exposes read operations for harvested contact records and
// CSV seed ingestion for upload-driven harvests.
type RecordsService struct {
	repo repository.RecordsRepository
}

// CSVValidationError indicates that the provided CSV payload is invalid.
type CSVValidationError struct {
	Message string
}

// Error implements the error interface.
func (e CSVValidationError) Error() string {
	return e.Message
}

// NewRecordsService creates a new instance of RecordsService.
func NewRecordsService(repo repository.RecordsRepository) *RecordsService {
	return &RecordsService{repo: repo}
}

// ListRecords returns contact records respecting pagination defaults.
func (s *RecordsService) ListRecords(ctx context.Context, filter dto.RecordFilter) ([]entity.ContactRecord, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}
	if filter.PerPage > 100 {
		filter.PerPage = 100
	}
	return s.repo.List(ctx, filter)
}

var requiredSeedHeaders = []string{"company", "website"}

// ParseSeedCSV reads seed candidates from a CSV payload. The file must
// carry company and website columns; rows missing either value are skipped.
func ParseSeedCSV(r io.Reader) ([]harvest.Candidate, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, CSVValidationError{Message: "csv file is empty"}
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	indexMap, valErr := buildSeedHeaderIndex(header)
	if valErr != nil {
		return nil, valErr
	}

	var candidates []harvest.Candidate
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		company := strings.TrimSpace(row[indexMap["company"]])
		website := strings.TrimSpace(row[indexMap["website"]])
		if company == "" || website == "" {
			continue
		}
		if !strings.HasPrefix(website, "http") {
			website = "https://" + website
		}

		candidates = append(candidates, harvest.Candidate{Name: company, URL: website})
	}

	if len(candidates) == 0 {
		return nil, CSVValidationError{Message: "csv file contains no usable rows"}
	}
	return candidates, nil
}

func buildSeedHeaderIndex(header []string) (map[string]int, error) {
	index := make(map[string]int)
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	missing := make([]string, 0)
	for _, required := range requiredSeedHeaders {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, CSVValidationError{Message: fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", "))}
	}
	return index, nil
}
