package scoring

import (
	"net/url"
	"strings"
)

const (
	categoryContact = "contact_completeness"
	categoryWeb     = "web_presence"
	categorySocial  = "social_presence"
	categoryTeam    = "team_depth"
)

var freeHostingDomains = []string{
	"wordpress.com",
	"blogspot.com",
	"wixsite.com",
	"weebly.com",
	"squarespace.com",
	"medium.com",
	"substack.com",
	"godaddysites.com",
	"notion.site",
	"jouwweb.nl",
}

// RecordFeatures captures the harvested signals used for scoring.
type RecordFeatures struct {
	Emails         []string
	Phones         []string
	LinkedIn       string
	TeamMembers    int
	HasAboutPage   bool
	HasContactPage bool
	Website        string
}

// ScoreResult reports the aggregate score and the per-category breakdown.
type ScoreResult struct {
	Total     int
	Breakdown map[string]int
}

// ComputeScore evaluates the provided features and returns the score breakdown.
func ComputeScore(input RecordFeatures) ScoreResult {
	breakdown := map[string]int{
		categoryContact: scoreContactCompleteness(input),
		categoryWeb:     scoreWebPresence(input),
		categorySocial:  scoreSocialPresence(input),
		categoryTeam:    scoreTeamDepth(input),
	}

	total := 0
	for _, value := range breakdown {
		total += value
	}

	return ScoreResult{
		Total:     total,
		Breakdown: breakdown,
	}
}

func scoreContactCompleteness(input RecordFeatures) int {
	score := 0
	if hasValue(input.Emails) {
		score += 15
	}
	if hasValue(input.Phones) {
		score += 15
	}
	return score
}

func scoreWebPresence(input RecordFeatures) int {
	score := 0
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(input.Website)), "https://") {
		score += 10
	}
	if input.HasAboutPage {
		score += 5
	}
	if input.HasContactPage {
		score += 5
	}
	if highQualityDomain(input.Website) {
		score += 10
	}
	if score > 30 {
		return 30
	}
	return score
}

func scoreSocialPresence(input RecordFeatures) int {
	if strings.TrimSpace(input.LinkedIn) == "" {
		return 0
	}
	return 20
}

func scoreTeamDepth(input RecordFeatures) int {
	if input.TeamMembers <= 0 {
		return 0
	}
	score := input.TeamMembers * 5
	if score > 20 {
		return 20
	}
	return score
}

func hasValue(values []string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

func highQualityDomain(raw string) bool {
	domain := extractDomain(raw)
	if domain == "" {
		return false
	}
	for _, bad := range freeHostingDomains {
		if domain == bad || strings.HasSuffix(domain, "."+bad) {
			return false
		}
	}
	return strings.Count(domain, ".") >= 1
}

func extractDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	lowered := strings.ToLower(raw)
	if !strings.Contains(lowered, "://") {
		lowered = "https://" + lowered
	}
	parsed, err := url.Parse(lowered)
	if err != nil {
		return ""
	}
	host := strings.TrimSpace(strings.ToLower(parsed.Host))
	host = strings.TrimPrefix(host, "www.")
	return host
}
