// Package segment picks the single context line the extractor works on.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Remove zero-width and format chars
// 4 Collapse whitespace runs preserving line breaks
// 5 Per line trim, drop mailto markers, drop empties
// 6 Prefer the first markdown heading line else the first non-empty line
// 7 Reconcile caller hints into the chosen line
package segment

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"candiqo/internal/core/patterns"
)

// ErrNoContext reports input with no usable line after normalization
var ErrNoContext = errors.New("segment: no usable line in input")

// selection strategies reported back to the caller
const (
	StrategyHeadingFirst  = "heading_first"
	StrategyFirstNonEmpty = "first_non_empty"

	// tag appended to the strategy when any hint was merged in
	hintMergeTag = "hint_merge"
)

// hint keys reported in Result.HintsUsed
const (
	HintDate     = "date_hint"
	HintCompany  = "company_hint"
	HintLocation = "location_hint"
)

// Hints carries optional caller-supplied gap fillers for sparse lines
type Hints struct {
	Title    string
	Company  string
	Location string
	Date     string
}

// Result is the chosen context line plus how it was chosen.
// TitleFromHeading is set when a heading line preceding the context heading
// looks like a standalone title; the extractor uses it as a late fallback
type Result struct {
	Line             string
	TitleFromHeading string
	Strategy         string
	HintsUsed        []string
}

var headingRe = regexp.MustCompile(`^#{1,6}\s+`)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
		)
	},
}

// SelectContextLine normalizes raw, picks the working line and merges hints.
// Returns ErrNoContext when nothing usable remains
func SelectContextLine(raw string, h Hints) (Result, error) {
	lines := usableLines(raw)
	if len(lines) == 0 {
		return Result{}, ErrNoContext
	}

	var headings []string
	for _, l := range lines {
		if headingRe.MatchString(l) {
			headings = append(headings, strings.TrimSpace(headingRe.ReplaceAllString(l, "")))
		}
	}

	res := Result{Strategy: StrategyHeadingFirst}
	switch {
	case len(headings) >= 2:
		// résumé entries often carry two headings: the first is a bare
		// title, the second the company/date line
		res.TitleFromHeading = headings[0]
		res.Line = headings[1]
	case len(headings) == 1:
		res.Line = headings[0]
	default:
		res.Line = lines[0]
		res.Strategy = StrategyFirstNonEmpty
	}
	if res.Line == "" {
		// a heading marker with nothing after it
		return Result{}, ErrNoContext
	}

	res = mergeHints(res, h)
	return res, nil
}

// usableLines normalizes raw and returns its non-empty lines in order
func usableLines(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	s := strings.ToValidUTF8(raw, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	ns = collapseSpaces(ns)

	var out []string
	for _, l := range strings.Split(ns, "\n") {
		l = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "mailto:"))
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// mergeHints reconciles caller hints into the chosen line. Each rule fires at
// most once and only when the line lacks the corresponding signal
func mergeHints(res Result, h Hints) Result {
	if d := strings.TrimSpace(h.Date); d != "" && patterns.FindDateRange(res.Line) == "" {
		res.Line = d + " : " + res.Line
		res.HintsUsed = append(res.HintsUsed, HintDate)
	}
	if c := strings.TrimSpace(h.Company); c != "" &&
		!strings.Contains(res.Line, "|") &&
		!strings.Contains(strings.ToLower(res.Line), strings.ToLower(c)) {
		res.Line += " | " + c
		res.HintsUsed = append(res.HintsUsed, HintCompany)
	}
	if l := strings.TrimSpace(h.Location); l != "" &&
		!strings.Contains(res.Line, " - ") &&
		!strings.Contains(strings.ToLower(res.Line), strings.ToLower(l)) {
		res.Line += " - " + l
		res.HintsUsed = append(res.HintsUsed, HintLocation)
	}
	if len(res.HintsUsed) > 0 {
		res.Strategy += "|" + hintMergeTag
	}
	return res
}

// collapseSpaces converts whitespace runs to a single ASCII space, but preserves line breaks.
// Runs that contain any newline are collapsed to a single newline
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	sawNL := false
	flush := func() {
		if !inWS {
			return
		}
		if sawNL {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		inWS = false
		sawNL = false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			if r == '\n' || r == '\r' {
				sawNL = true
			}
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return strings.Trim(b.String(), " \n\t\r")
}
