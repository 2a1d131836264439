package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/octobees/contact-harvester/internal/config"
	"github.com/octobees/contact-harvester/internal/dto"
	"github.com/octobees/contact-harvester/internal/entity"
	"github.com/octobees/contact-harvester/internal/harvest"
	"github.com/octobees/contact-harvester/internal/repository"
	"github.com/octobees/contact-harvester/internal/service/scoring"
)

// SearcherFactory builds the search backend for a run. It exists so tests
// can substitute a stub for the real Google backends.
type SearcherFactory func(ctx context.Context, fetcher *harvest.Fetcher) (harvest.Searcher, error)

// HarvestService runs harvests and persists the resulting contact records.
type HarvestService struct {
	cfg      *config.Config
	records  repository.RecordsRepository
	cleaner  *Cleaner
	queries  *QueryBuilder
	searcher SearcherFactory
}

// NewHarvestService wires a harvest service from configuration. The search
// backend is the Custom Search API when credentials are configured and the
// scraped results page otherwise.
func NewHarvestService(cfg *config.Config, records repository.RecordsRepository) *HarvestService {
	svc := &HarvestService{
		cfg:     cfg,
		records: records,
		cleaner: NewCleaner(cfg.PhoneRegion),
		queries: NewQueryBuilder(""),
	}
	svc.searcher = func(ctx context.Context, fetcher *harvest.Fetcher) (harvest.Searcher, error) {
		if cfg.CSEConfigured() {
			return harvest.NewCSESearcher(ctx, cfg.GoogleAPIKey, cfg.GoogleCSEID)
		}
		return harvest.NewGoogleSearcher(fetcher), nil
	}
	return svc
}

// WithSearcherFactory overrides the search backend.
func (s *HarvestService) WithSearcherFactory(factory SearcherFactory) *HarvestService {
	s.searcher = factory
	return s
}

// Run executes one harvest. Queries come from the request when present and
// from configuration otherwise; every scraped record is persisted before
// the next site is visited.
func (s *HarvestService) Run(ctx context.Context, req dto.HarvestRequest) (dto.HarvestResponse, error) {
	queries := s.queries.Build(req)
	if len(queries) == 0 {
		queries = s.cfg.SearchQueries
	}

	maxCompanies := s.cfg.MaxCompanies
	if req.MaxCompanies != nil {
		if *req.MaxCompanies < 0 {
			return dto.HarvestResponse{}, fmt.Errorf("max_companies must not be negative")
		}
		maxCompanies = *req.MaxCompanies
	}

	fetcher := harvest.NewFetcher(s.cfg.FetchTimeout)
	searcher, err := s.searcher(ctx, fetcher)
	if err != nil {
		return dto.HarvestResponse{}, fmt.Errorf("build searcher: %w", err)
	}

	return s.run(ctx, searcher, fetcher, queries, maxCompanies)
}

// RunSeeds harvests a fixed candidate list instead of search results. Seed
// candidates come from CSV uploads.
func (s *HarvestService) RunSeeds(ctx context.Context, candidates []harvest.Candidate, maxCompanies *int) (dto.HarvestResponse, error) {
	limit := s.cfg.MaxCompanies
	if maxCompanies != nil {
		if *maxCompanies < 0 {
			return dto.HarvestResponse{}, fmt.Errorf("max_companies must not be negative")
		}
		limit = *maxCompanies
	}

	fetcher := harvest.NewFetcher(s.cfg.FetchTimeout)
	return s.run(ctx, seedSearcher(candidates), fetcher, []string{"seed upload"}, limit)
}

func (s *HarvestService) run(ctx context.Context, searcher harvest.Searcher, fetcher *harvest.Fetcher, queries []string, maxCompanies int) (dto.HarvestResponse, error) {
	runID := uuid.New()
	pace := rate.NewLimiter(rate.Every(s.cfg.PolitenessDelay), 1)
	teamFetcher := harvest.NewFetcher(s.cfg.TeamFetchTimeout)

	sink := &recordSink{svc: s, runID: runID}
	scraper := harvest.NewSiteScraper(fetcher, teamFetcher, pace)
	runner := harvest.NewRunner(searcher, scraper, sink, pace, maxCompanies)

	summary, err := runner.Run(ctx, queries)
	if err != nil {
		return dto.HarvestResponse{}, err
	}

	return dto.HarvestResponse{
		RunID:      runID.String(),
		Queries:    summary.Queries,
		Candidates: summary.Candidates,
		Visited:    summary.Visited,
		Records:    summary.Records,
	}, nil
}

// seedSearcher yields its fixed candidate list for the single seed pseudo
// query. The per-query result cap applies to search result pages, not to
// uploads; the run cap still bounds how many records are produced.
type seedSearcher []harvest.Candidate

func (s seedSearcher) Search(_ context.Context, _ string, _ int) ([]harvest.Candidate, error) {
	return s, nil
}

// recordSink persists each record as it is scraped.
type recordSink struct {
	svc   *HarvestService
	runID uuid.UUID
}

func (r *recordSink) Push(ctx context.Context, rec harvest.Record) error {
	record := r.svc.toEntity(rec, r.runID)
	return r.svc.records.Insert(ctx, record)
}

// toEntity converts a scraped record into its persisted form. Raw extraction
// values are kept verbatim; cleaned variants live in their own columns.
func (s *HarvestService) toEntity(rec harvest.Record, runID uuid.UUID) *entity.ContactRecord {
	record := &entity.ContactRecord{
		ID:          uuid.New(),
		RunID:       runID,
		CompanyName: rec.CompanyName,
		Website:     rec.Website,
		Domain:      domainOf(rec.Website),
		Emails:      rec.Emails,
		Phones:      rec.Phones,
		CleanEmails: s.cleaner.CleanEmails(rec.Emails),
		PhonesE164:  s.cleaner.NormalizePhones(rec.PhoneSources),
		LinkedIn:    normalizeString(rec.LinkedIn),
		AboutURL:    normalizeString(rec.AboutURL),
		ContactURL:  normalizeString(rec.ContactURL),
		HarvestedAt: time.Now().UTC(),
	}

	if canonical := s.cleaner.CanonicalLinkedIn(rec.LinkedIn); canonical != "" {
		record.LinkedIn = &canonical
	}

	for _, m := range rec.TeamMembers {
		record.TeamMembers = append(record.TeamMembers, entity.TeamMember{
			Name:     m.Name,
			Position: normalizeString(m.Position),
			Email:    normalizeString(m.Email),
		})
	}

	linkedin := ""
	if record.LinkedIn != nil {
		linkedin = *record.LinkedIn
	}
	record.Score = scoring.ComputeScore(scoring.RecordFeatures{
		Emails:         record.CleanEmails,
		Phones:         record.PhonesE164,
		LinkedIn:       linkedin,
		TeamMembers:    len(record.TeamMembers),
		HasAboutPage:   record.AboutURL != nil,
		HasContactPage: record.ContactURL != nil,
		Website:        record.Website,
	}).Total

	return record
}

func domainOf(website string) string {
	u, err := url.Parse(website)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

func normalizeString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
