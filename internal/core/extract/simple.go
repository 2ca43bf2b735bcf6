package extract

import (
	"context"
	"strings"
	"unicode"

	"candiqo/internal/nlp"
)

// SimpleResult is the entity-subtraction extraction: labeled spans sorted
// into buckets and a job title built from everything the tagger left alone
type SimpleResult struct {
	Orgs      []string
	Dates     []string
	Locations []string
	JobTitle  string

	// debug extras
	Ents        []nlp.Entity
	TokenCount  int
	TaggedCount int
}

// token is a whitespace-delimited run with its rune offsets, matching the
// character offsets the tagger reports
type token struct {
	text       string
	start, end int
}

// ExtractSimple runs the tagger once over text and partitions it: entity
// spans go to their buckets (first-appearance order, duplicates kept), and
// the job title is the join of all tokens no entity span touches, minus
// punctuation and stop-words
func ExtractSimple(ctx context.Context, tagger nlp.Tagger, text string) (SimpleResult, error) {
	ents, err := tagger.Tag(ctx, text)
	if err != nil {
		return SimpleResult{}, err
	}

	res := SimpleResult{Ents: ents}
	for _, e := range ents {
		switch e.Label {
		case nlp.LabelOrg:
			res.Orgs = append(res.Orgs, e.Text)
		case nlp.LabelDate:
			res.Dates = append(res.Dates, e.Text)
		case nlp.LabelLoc:
			res.Locations = append(res.Locations, e.Text)
		}
	}

	toks := tokenize(text)
	res.TokenCount = len(toks)

	var free []string
	for _, t := range toks {
		if covered(t, ents) {
			res.TaggedCount++
			continue
		}
		if isPunct(t.text) || isStopword(t.text) {
			continue
		}
		free = append(free, t.text)
	}
	res.JobTitle = strings.Join(free, " ")
	return res, nil
}

// tokenize splits text on whitespace, tracking rune offsets
func tokenize(text string) []token {
	var toks []token
	start := -1
	pos := 0
	var b strings.Builder
	for _, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, token{text: b.String(), start: start, end: pos})
				b.Reset()
				start = -1
			}
		} else {
			if start < 0 {
				start = pos
			}
			b.WriteRune(r)
		}
		pos++
	}
	if start >= 0 {
		toks = append(toks, token{text: b.String(), start: start, end: pos})
	}
	return toks
}

// covered reports whether any entity span overlaps the token
func covered(t token, ents []nlp.Entity) bool {
	for _, e := range ents {
		if t.start < e.End && e.Start < t.end {
			return true
		}
	}
	return false
}
