// Package service contains the experience extraction workflows
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"candiqo/internal/core/extract"
	"candiqo/internal/core/segment"
	"candiqo/internal/nlp"
	perr "candiqo/internal/platform/errors"
	"candiqo/internal/services/api/xp/domain"
)

// Service defines the xp service contract
type Service interface {
	domain.ServicePort
}

// Options tune the service. Zero values fall back to the published defaults
type Options struct {
	// MaxChars bounds input size in runes; oversized input is rejected
	// before any tagger call
	MaxChars int
	// Score holds the confidence weights
	Score extract.ScoreConfig
	// DebugDefault is used when a request does not set its debug flag
	DebugDefault bool
}

// Svc implements the xp service
type Svc struct {
	tagger nlp.Tagger
	opt    Options
}

// New constructs an xp service around a shared tagger
func New(tagger nlp.Tagger, opt Options) *Svc {
	if tagger == nil {
		panic("xp.Service requires a non nil Tagger")
	}
	if opt.MaxChars <= 0 {
		opt.MaxChars = 120000
	}
	if opt.Score == (extract.ScoreConfig{}) {
		opt.Score = extract.DefaultScoreConfig()
	}
	return &Svc{tagger: tagger, opt: opt}
}

// Parse extracts the full structured record from a raw experience block
func (s *Svc) Parse(ctx context.Context, in domain.ParseInput) (domain.ParseResult, error) {
	if err := s.guard("raw", in.Raw); err != nil {
		return domain.ParseResult{}, err
	}

	var hints segment.Hints
	var titleHint string
	if in.Meta != nil {
		hints = segment.Hints{
			Title:    in.Meta.TitleHint,
			Company:  in.Meta.CompanyHint,
			Location: in.Meta.LocationHint,
			Date:     in.Meta.DateHint,
		}
		titleHint = in.Meta.TitleHint
	}

	sel, err := segment.SelectContextLine(in.Raw, hints)
	if err != nil {
		return domain.ParseResult{}, perr.InvalidArgf("could not find context line")
	}

	f, err := extract.Extract(ctx, s.tagger, sel.Line, titleHint, sel.TitleFromHeading)
	if err != nil {
		return domain.ParseResult{}, err
	}

	confidence, warnings := s.opt.Score.Evaluate(f)

	res := domain.ParseResult{
		ID:                strings.TrimSpace(in.ID),
		CtxLine:           sel.Line,
		TitleRaw:          f.Title,
		CompanyDisplay:    f.CompanyDisplay,
		CompanyQuery:      f.CompanyQuery,
		CompanyGroupHints: emptyNotNil(f.GroupHints),
		LocationRaw:       f.Location,
		DateRangeRaw:      f.DateRange,
		Confidence:        confidence,
		Warnings:          emptyNotNil(warnings),
	}
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if s.debugOn(in.Debug) {
		res.Debug = &domain.ParseDebug{
			Strategy:     sel.Strategy,
			HintsUsed:    sel.HintsUsed,
			Left:         f.Left,
			Right:        f.Right,
			CandidateFor: f.Candidate,
		}
	}
	return res, nil
}

// Company is the legacy company-extraction subset of Parse
func (s *Svc) Company(ctx context.Context, in domain.CompanyInput) (domain.CompanyResult, error) {
	if err := s.guard("raw", in.Raw); err != nil {
		return domain.CompanyResult{}, err
	}

	sel, err := segment.SelectContextLine(in.Raw, segment.Hints{})
	if err != nil {
		return domain.CompanyResult{}, perr.InvalidArgf("could not find context line")
	}

	f, err := extract.Extract(ctx, s.tagger, sel.Line)
	if err != nil {
		return domain.CompanyResult{}, err
	}

	return domain.CompanyResult{
		CtxLine:           sel.Line,
		CompanyDisplay:    f.CompanyDisplay,
		CompanyQuery:      f.CompanyQuery,
		CompanyGroupHints: emptyNotNil(f.GroupHints),
		LocationRaw:       f.Location,
		DateRangeRaw:      f.DateRange,
	}, nil
}

// Simple runs the entity-subtraction extraction over a flat text
func (s *Svc) Simple(ctx context.Context, in domain.SimpleInput) (domain.SimpleResult, error) {
	if err := s.guard("text", in.Text); err != nil {
		return domain.SimpleResult{}, err
	}

	sr, err := extract.ExtractSimple(ctx, s.tagger, in.Text)
	if err != nil {
		return domain.SimpleResult{}, err
	}

	res := domain.SimpleResult{
		Orgs:      emptyNotNil(sr.Orgs),
		Dates:     emptyNotNil(sr.Dates),
		Locations: emptyNotNil(sr.Locations),
		JobTitle:  sr.JobTitle,
	}
	if s.debugOn(in.Debug) {
		res.Debug = &domain.SimpleDebug{
			Ents:        sr.Ents,
			TokenCount:  sr.TokenCount,
			TaggedCount: sr.TaggedCount,
		}
	}
	return res, nil
}

// Ents exposes the raw tagger output. Empty text short-circuits to an empty
// list without touching the tagger
func (s *Svc) Ents(ctx context.Context, in domain.EntsInput) ([]nlp.Entity, error) {
	if n := len([]rune(in.Text)); n > s.opt.MaxChars {
		return nil, perr.TooLargef("text too large (>%d chars)", s.opt.MaxChars)
	}
	if in.Text == "" {
		return []nlp.Entity{}, nil
	}
	ents, err := s.tagger.Tag(ctx, in.Text)
	if err != nil {
		return nil, err
	}
	if ents == nil {
		ents = []nlp.Entity{}
	}
	return ents, nil
}

// guard rejects blank and oversized input before any heuristic runs
func (s *Svc) guard(field, text string) error {
	if strings.TrimSpace(text) == "" {
		return perr.WithField(perr.Validationf("%s is required and must not be blank", field), field)
	}
	if n := len([]rune(text)); n > s.opt.MaxChars {
		return perr.TooLargef("%s too large (>%d chars)", field, s.opt.MaxChars)
	}
	return nil
}

func (s *Svc) debugOn(flag *bool) bool {
	if flag != nil {
		return *flag
	}
	return s.opt.DebugDefault
}

func emptyNotNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
