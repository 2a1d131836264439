package service

import (
	"fmt"
	"strings"

	"github.com/octobees/contact-harvester/internal/dto"
)

// queryTemplates expand a business type and region into search queries. The
// mix of Dutch and English mirrors how Dutch companies describe themselves.
var queryTemplates = []string{
	"%s bedrijven %s",
	"%s webshop %s",
	"%s companies %s",
}

// QueryBuilder turns a harvest request into the list of search queries a
// run should execute.
type QueryBuilder struct {
	DefaultRegion string
}

// NewQueryBuilder creates a builder with a fallback region.
func NewQueryBuilder(defaultRegion string) *QueryBuilder {
	if strings.TrimSpace(defaultRegion) == "" {
		defaultRegion = "Nederland"
	}
	return &QueryBuilder{DefaultRegion: defaultRegion}
}

// Build returns explicit queries when the request carries them, expands the
// business type and region otherwise, and returns nil when the request has
// neither so the caller can fall back to the configured defaults.
func (b *QueryBuilder) Build(req dto.HarvestRequest) []string {
	var queries []string
	for _, raw := range req.Queries {
		if q := strings.TrimSpace(raw); q != "" {
			queries = append(queries, q)
		}
	}
	if len(queries) > 0 {
		return queries
	}

	businessType := strings.TrimSpace(req.BusinessType)
	if businessType == "" {
		return nil
	}
	region := strings.TrimSpace(req.Region)
	if region == "" {
		region = b.DefaultRegion
	}

	queries = make([]string, 0, len(queryTemplates))
	for _, tmpl := range queryTemplates {
		queries = append(queries, fmt.Sprintf(tmpl, businessType, region))
	}
	return queries
}
