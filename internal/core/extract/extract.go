// Package extract turns a context line into structured experience fields.
// The regex pipeline (Split) is pure and fully deterministic; the entity
// tagger refinement (RefineCompany) is kept separate so the pipeline can be
// tested without a model
package extract

import (
	"context"
	"strings"

	"candiqo/internal/core/patterns"
	"candiqo/internal/nlp"
)

// Fields is the extraction output. Left, Right and Candidate are the raw
// intermediates, kept for debug payloads
type Fields struct {
	Title          string
	CompanyDisplay string
	CompanyQuery   string
	GroupHints     []string
	Location       string
	DateRange      string

	Left      string
	Right     string
	Candidate string
}

// Split runs the regex pipeline over line. titleFallbacks are consulted in
// order when the line itself yields no title (caller hint first, then any
// title derived from a heading)
func Split(line string, titleFallbacks ...string) Fields {
	var f Fields

	// date first, against the full line, so it can be stripped from both
	// sides without double-counting
	f.DateRange = patterns.FindDateRange(line)

	left, right := line, ""
	if i := strings.IndexByte(line, '|'); i >= 0 {
		left, right = strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	f.Left, f.Right = left, right

	cand := right
	if cand == "" {
		cand = left
	}
	cand = patterns.StripDateRange(cand, f.DateRange)
	if cand == "" && right != "" {
		// the right side was nothing but the date, company lives on the left
		cand = patterns.StripDateRange(left, f.DateRange)
	}
	f.Candidate = cand

	f.CompanyDisplay, f.Location = patterns.SplitDashLocation(cand)

	f.Title = pickTitle(patterns.StripDateRange(left, f.DateRange), titleFallbacks)

	f.GroupHints = patterns.GroupHints(f.CompanyDisplay)
	f.CompanyQuery = patterns.CleanCompanyQuery(f.CompanyDisplay)
	return f
}

// pickTitle applies the title precedence: text after the first colon of the
// date-stripped left side, then the fallbacks, then the left side itself
func pickTitle(left string, fallbacks []string) string {
	if i := strings.IndexByte(left, ':'); i >= 0 {
		return strings.TrimSpace(left[i+1:])
	}
	for _, fb := range fallbacks {
		if fb = strings.TrimSpace(fb); fb != "" {
			return fb
		}
	}
	return strings.TrimSpace(left)
}

// RefineCompany replaces the company query with the longest ORG span found
// by the tagger, ties broken by first occurrence, spans under 2 characters
// ignored. The display value is never touched
func RefineCompany(f Fields, ents []nlp.Entity) Fields {
	best := ""
	for _, e := range ents {
		if e.Label != nlp.LabelOrg {
			continue
		}
		t := strings.TrimSpace(e.Text)
		if len([]rune(t)) > len([]rune(best)) {
			best = t
		}
	}
	if len([]rune(best)) >= 2 {
		f.CompanyQuery = best
	}
	return f
}

// Extract is Split plus the tagger round trip over the company query.
// A tagger failure fails the whole call
func Extract(ctx context.Context, tagger nlp.Tagger, line string, titleFallbacks ...string) (Fields, error) {
	f := Split(line, titleFallbacks...)
	if f.CompanyQuery == "" {
		return f, nil
	}
	ents, err := tagger.Tag(ctx, f.CompanyQuery)
	if err != nil {
		return Fields{}, err
	}
	return RefineCompany(f, ents), nil
}
