// Package patterns holds the fixed matchers used by the experience extractor.
// All matchers return verbatim substrings of their input; nothing here parses
// dates into calendar values
package patterns

import (
	"regexp"
	"strings"
)

// month names accepted in date tokens, French first, common English forms too
const monthNames = `janv(?:ier)?|f[ée]vr?(?:ier)?|mars?|avr(?:il)?|mai|juin|juil(?:let)?|ao[ûu]t|sept?(?:embre)?|oct(?:obre)?|nov(?:embre)?|d[ée]c(?:embre)?|january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|apr|jun|jul|aug|oct|nov|dec`

// a date token is an optional month (name or MM/) and a 4-digit year 1900-2099
const dateToken = `(?:(?:` + monthNames + `)\.?\s*)?(?:(?:0?[1-9]|1[0-2])\s*/\s*)?(?:19|20)\d{2}`

// open-ended range markers meaning "still ongoing"
const openEnded = `(?:pr[ée]sent|actuel(?:lement)?|aujourd'hui|en\s+cours|now|today)`

// separators between the two ends of a range
const rangeSep = `\s*(?:[–—-]|to|à|au|jusqu'?\s?(?:à|au)?)\s*`

var (
	dateRangeRe = regexp.MustCompile(`(?i)` + dateToken + rangeSep + `(?:` + dateToken + `|` + openEnded + `)`)
	sinceRe     = regexp.MustCompile(`(?i)\b(?:depuis|since)\s+(?:(?:` + monthNames + `)\.?\s*)?(?:(?:0?[1-9]|1[0-2])\s*/\s*)?(?:19|20)\d{2}`)

	firstParenRe = regexp.MustCompile(`\((.*?)\)`)
	allParensRe  = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	groupSplitRe = regexp.MustCompile(`[/,;]| et `)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
	dashSplitRe  = regexp.MustCompile(`\s[–—-]\s`)
)

// maxGroupHints caps the parenthetical group list
const maxGroupHints = 10

// DateRange returns the first month/year range in s, verbatim, or ""
func DateRange(s string) string {
	return dateRangeRe.FindString(s)
}

// Since returns the first "depuis"/"since" date phrase in s, verbatim, or ""
// only consulted when DateRange found nothing
func Since(s string) string {
	return sinceRe.FindString(s)
}

// FindDateRange locates a raw date range in s, trying the range matcher first
// and falling back to the since matcher
func FindDateRange(s string) string {
	if m := DateRange(s); m != "" {
		return m
	}
	return Since(s)
}

// GroupHints extracts secondary organization names from the first
// parenthesized group in s, split on / , ; or " et ", source order, capped
func GroupHints(s string) []string {
	m := firstParenRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	parts := groupSplitRe.Split(m[1], -1)
	hints := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			hints = append(hints, p)
		}
		if len(hints) == maxGroupHints {
			break
		}
	}
	return hints
}

// CleanCompanyQuery removes parenthesized groups (and any stray paren) from s
// and collapses the resulting double spaces
func CleanCompanyQuery(s string) string {
	q := allParensRe.ReplaceAllString(s, " ")
	q = strings.NewReplacer("(", "", ")", "").Replace(q)
	q = multiSpaceRe.ReplaceAllString(q, " ")
	return strings.TrimSpace(q)
}

// SplitDashLocation splits s on the FIRST single dash surrounded by single
// spaces, yielding the company part and the location part ("" when no dash)
func SplitDashLocation(s string) (company, location string) {
	loc := dashSplitRe.FindStringIndex(s)
	if loc == nil {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(s[:loc[0]]), strings.TrimSpace(s[loc[1]:])
}

// StripDateRange removes the exact substring rng from s (first occurrence)
// and re-collapses whitespace
func StripDateRange(s, rng string) string {
	if rng == "" {
		return s
	}
	s = strings.Replace(s, rng, " ", 1)
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
