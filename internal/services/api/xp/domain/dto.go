// Package domain holds DTOs for xp http and service contracts
package domain

import "candiqo/internal/nlp"

// Meta carries optional caller hints used to fill gaps in sparse lines
// hints never override structure already present
type Meta struct {
	TitleHint    string `json:"title_hint,omitempty" validate:"omitempty,max=500" example:"Lead Developer"`
	CompanyHint  string `json:"company_hint,omitempty" validate:"omitempty,max=500" example:"Acme Corp"`
	LocationHint string `json:"location_hint,omitempty" validate:"omitempty,max=500" example:"Paris"`
	DateHint     string `json:"date_hint,omitempty" validate:"omitempty,max=500" example:"06/2021 - présent"`
}

// ParseInput is the body of POST /xp/parse
type ParseInput struct {
	ID    string `json:"id,omitempty" validate:"omitempty,max=200" example:"xp-00042"`
	Raw   string `json:"raw" validate:"required" example:"## Acme Corp - Paris | 06/2021 - présent"`
	Meta  *Meta  `json:"meta,omitempty"`
	Debug *bool  `json:"debug,omitempty" example:"false"`
}

// ParseDebug exposes the intermediate extraction decisions
type ParseDebug struct {
	Strategy     string   `json:"strategy" example:"heading_first"`
	HintsUsed    []string `json:"hints_used,omitempty" example:"date_hint"`
	Left         string   `json:"left"`
	Right        string   `json:"right"`
	CandidateFor string   `json:"candidate_for_company"`
}

// ParseResult is the full extraction record
type ParseResult struct {
	ID                string      `json:"id" example:"xp-00042"`
	CtxLine           string      `json:"ctx_line" example:"Acme Corp - Paris | 06/2021 - présent"`
	TitleRaw          string      `json:"title_raw,omitempty" example:"Lead Developer"`
	CompanyDisplay    string      `json:"company_display,omitempty" example:"Acme Corp (Acme Group)"`
	CompanyQuery      string      `json:"company_query,omitempty" example:"Acme Corp"`
	CompanyGroupHints []string    `json:"company_group_hints" example:"Acme Group"`
	LocationRaw       string      `json:"location_raw,omitempty" example:"Paris"`
	DateRangeRaw      string      `json:"date_range_raw,omitempty" example:"06/2021 - présent"`
	Confidence        float64     `json:"confidence" example:"0.95"`
	Warnings          []string    `json:"warnings" example:"NO_DATE_RANGE_DETECTED"`
	Debug             *ParseDebug `json:"debug,omitempty"`
}

// CompanyInput is the body of the legacy POST /xp/company
type CompanyInput struct {
	Raw string `json:"raw" validate:"required" example:"## Acme Corp - Paris | 06/2021 - présent"`
}

// CompanyResult is the legacy company extraction subset
type CompanyResult struct {
	CtxLine           string   `json:"ctx_line"`
	CompanyDisplay    string   `json:"company_display,omitempty"`
	CompanyQuery      string   `json:"company_query,omitempty"`
	CompanyGroupHints []string `json:"company_group_hints"`
	LocationRaw       string   `json:"location_raw,omitempty"`
	DateRangeRaw      string   `json:"date_range_raw,omitempty"`
}

// SimpleInput is the body of POST /xp/extract_simple
type SimpleInput struct {
	Text  string `json:"text" validate:"required" example:"Ingénieur chez Google à Paris depuis 2020"`
	Debug *bool  `json:"debug,omitempty" example:"false"`
}

// SimpleDebug carries the entity dump and token counters
type SimpleDebug struct {
	Ents        []nlp.Entity `json:"ents"`
	TokenCount  int          `json:"token_count" example:"7"`
	TaggedCount int          `json:"tagged_count" example:"4"`
}

// SimpleResult is the entity-subtraction output
type SimpleResult struct {
	Orgs      []string     `json:"orgs"`
	Dates     []string     `json:"dates"`
	Locations []string     `json:"locations"`
	JobTitle  string       `json:"job_title" example:"Ingénieur"`
	Debug     *SimpleDebug `json:"debug,omitempty"`
}

// EntsInput is the body of POST /debug/ents. An empty text is allowed and
// yields an empty entity list
type EntsInput struct {
	Text string `json:"text" example:"Acme Corp est à Paris"`
}
