package service

import (
	"reflect"
	"testing"
)

func TestCleanerCleanEmails(t *testing.T) {
	cleaner := NewCleaner("NL")

	input := []string{
		"  Info@Acme.NL ",
		"info@acme.nl",
		"not-an-email",
		"user@-bad-.nl",
		"sales@acme.nl",
		"",
	}
	want := []string{"info@acme.nl", "sales@acme.nl"}

	if got := cleaner.CleanEmails(input); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected emails: %#v", got)
	}
}

func TestCleanerCleanEmailsInternationalizedDomain(t *testing.T) {
	cleaner := NewCleaner("NL")
	// Punycode domains pass through IDNA conversion; raw unicode does not
	// survive the syntax check.
	if got := cleaner.CleanEmails([]string{"info@xn--bcher-kva.de"}); len(got) != 1 {
		t.Fatalf("expected punycode domain to validate, got %#v", got)
	}
	if got := cleaner.CleanEmails([]string{"info@bücher.de"}); got != nil {
		t.Fatalf("expected unicode domain to be rejected, got %#v", got)
	}
}

func TestCleanerCleanEmailsEmpty(t *testing.T) {
	cleaner := NewCleaner("NL")
	if got := cleaner.CleanEmails(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %#v", got)
	}
	if got := cleaner.CleanEmails([]string{"junk"}); got != nil {
		t.Fatalf("expected nil when nothing validates, got %#v", got)
	}
}

func TestCleanerNormalizePhones(t *testing.T) {
	cleaner := NewCleaner("NL")

	input := []string{"06-12345678", "+31 6 12345678", "not a phone", "12"}
	got := cleaner.NormalizePhones(input)
	if !reflect.DeepEqual(got, []string{"+31612345678"}) {
		t.Fatalf("unexpected phones: %#v", got)
	}
}

func TestCleanerNormalizePhonesRegion(t *testing.T) {
	// The same national number parses differently per region.
	nl := NewCleaner("NL").NormalizePhones([]string{"0612345678"})
	if !reflect.DeepEqual(nl, []string{"+31612345678"}) {
		t.Fatalf("unexpected NL phone: %#v", nl)
	}

	if got := NewCleaner("").DefaultRegion; got != "NL" {
		t.Fatalf("expected NL fallback region, got %q", got)
	}
}

func TestCleanerCanonicalLinkedIn(t *testing.T) {
	cleaner := NewCleaner("NL")

	tests := map[string]string{
		"https://www.linkedin.com/company/acme":         "https://www.linkedin.com/company/acme",
		"http://linkedin.com/company/acme?utm_source=x": "https://linkedin.com/company/acme",
		"linkedin.com/company/acme":                     "https://linkedin.com/company/acme",
		"https://twitter.com/acme":                      "",
		"":                                              "",
	}
	for input, want := range tests {
		if got := cleaner.CanonicalLinkedIn(input); got != want {
			t.Fatalf("CanonicalLinkedIn(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIsDomainValid(t *testing.T) {
	valid := []string{"acme.nl", "shop.acme.co.uk"}
	invalid := []string{"acme", "-acme.nl", "acme-.nl", "acme..nl"}

	for _, d := range valid {
		if !isDomainValid(d) {
			t.Fatalf("expected %q to be valid", d)
		}
	}
	for _, d := range invalid {
		if isDomainValid(d) {
			t.Fatalf("expected %q to be invalid", d)
		}
	}
}
