package harvest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// resultsPerQuery is how many search result blocks one query may yield.
const resultsPerQuery = 20

// Summary totals one run.
type Summary struct {
	Queries    int `json:"queries"`
	Candidates int `json:"candidates"`
	Visited    int `json:"visited"`
	Records    int `json:"records"`
}

// Runner drives a harvest run: one query at a time, one site at a time,
// with run-scoped domain dedup and immediate per-record persistence. There
// is no concurrency, no retry and no cancellation beyond the context.
type Runner struct {
	searcher     Searcher
	sites        *SiteScraper
	sink         Sink
	pace         *rate.Limiter
	maxCompanies int
}

// NewRunner assembles a runner. maxCompanies caps the total records for the
// run; pace must be the same limiter the site scraper uses.
func NewRunner(searcher Searcher, sites *SiteScraper, sink Sink, pace *rate.Limiter, maxCompanies int) *Runner {
	return &Runner{
		searcher:     searcher,
		sites:        sites,
		sink:         sink,
		pace:         pace,
		maxCompanies: maxCompanies,
	}
}

// Run walks the query list until it is exhausted or the record cap is
// reached. Search and site failures are logged and skipped; only sink
// failures and context cancellation abort the run.
func (r *Runner) Run(ctx context.Context, queries []string) (Summary, error) {
	summary := Summary{}
	visited := make(map[string]struct{})

	for _, query := range queries {
		if summary.Records >= r.maxCompanies {
			break
		}
		summary.Queries++

		log.Info().Str("query", query).Msg("searching")
		candidates, err := r.searcher.Search(ctx, query, resultsPerQuery)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("search failed")
			continue
		}
		summary.Candidates += len(candidates)

		for _, cand := range candidates {
			if summary.Records >= r.maxCompanies {
				break
			}
			if err := ctx.Err(); err != nil {
				return summary, err
			}

			domain := cand.Domain()
			if domain == "" {
				continue
			}
			if _, seen := visited[domain]; seen {
				continue
			}
			visited[domain] = struct{}{}
			summary.Visited++

			log.Info().Str("company", cand.Name).Str("url", cand.URL).Msg("scraping site")
			if err := r.pace.Wait(ctx); err != nil {
				return summary, err
			}

			rec, err := r.sites.Scrape(ctx, cand)
			if err != nil {
				log.Debug().Err(err).Str("url", cand.URL).Msg("site scrape failed")
				continue
			}
			if rec == nil {
				continue
			}

			if err := r.sink.Push(ctx, *rec); err != nil {
				return summary, fmt.Errorf("push record for %s: %w", domain, err)
			}
			summary.Records++
		}
	}

	log.Info().
		Int("queries", summary.Queries).
		Int("candidates", summary.Candidates).
		Int("visited", summary.Visited).
		Int("records", summary.Records).
		Msg("harvest run finished")

	return summary, nil
}
