package service

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const (
	trackingPrefix     = "utm_"
	defaultPhoneRegion = "NL"
)

// Cleaner normalizes raw harvested contact data. Validation is purely
// syntactic: no DNS or HTTP probing, so cleaning stays deterministic and
// offline.
type Cleaner struct {
	DefaultRegion string
}

// NewCleaner builds a cleaner for the given phone region.
func NewCleaner(defaultRegion string) *Cleaner {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &Cleaner{DefaultRegion: region}
}

// CleanEmails lowercases, validates and deduplicates email addresses.
// Internationalized domains are checked through IDNA conversion.
func (c *Cleaner) CleanEmails(emails []string) []string {
	if len(emails) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(emails))
	valid := make([]string, 0, len(emails))

	for _, raw := range emails {
		email := strings.ToLower(strings.TrimSpace(raw))
		if email == "" || !emailPattern.MatchString(email) {
			continue
		}
		parts := strings.SplitN(email, "@", 2)
		domain := parts[1]
		if !isDomainValid(domain) {
			continue
		}
		asciiDomain, err := idnaProfile.ToASCII(domain)
		if err != nil || asciiDomain == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		valid = append(valid, email)
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}

// NormalizePhones parses each candidate against the default region and
// returns the deduplicated E.164 forms of the valid ones.
func (c *Cleaner) NormalizePhones(phones []string) []string {
	if len(phones) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(phones))
	valid := make([]string, 0, len(phones))

	for _, raw := range phones {
		normalized := normalizePhone(raw, c.DefaultRegion)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		valid = append(valid, normalized)
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}

// CanonicalLinkedIn returns the https form of a LinkedIn company URL with
// tracking parameters removed, or "" when the URL is not a linkedin.com host.
func (c *Cleaner) CanonicalLinkedIn(raw string) string {
	u, err := sanitizeURL(raw)
	if err != nil {
		return ""
	}
	host := strings.ToLower(strings.Trim(u.Hostname(), "."))
	if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
		return ""
	}
	stripTracking(u)
	return u.String()
}

func sanitizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, errors.New("invalid url")
	}
	u.Scheme = "https"
	return u, nil
}

func stripTracking(u *url.URL) {
	if u == nil {
		return
	}
	query := u.Query()
	changed := false
	for key := range query {
		if strings.HasPrefix(strings.ToLower(key), trackingPrefix) {
			query.Del(key)
			changed = true
		}
	}
	if changed {
		u.RawQuery = query.Encode()
	}
}

func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if region == "" {
		region = defaultPhoneRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	parts := strings.Split(domain, ".")
	for _, part := range parts {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}
