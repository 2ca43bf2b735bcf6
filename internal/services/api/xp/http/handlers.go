// Package http provides http transport for xp
package http

import (
	stdhttp "net/http"

	"candiqo/internal/modkit/httpkit"
	"candiqo/internal/services/api/xp/domain"
	svc "candiqo/internal/services/api/xp/service"
)

// Register mounts the xp endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// full structured extraction
	httpkit.PostJSON[domain.ParseInput](r, "/parse", h.parse)

	// legacy company-only subset
	httpkit.PostJSON[domain.CompanyInput](r, "/company", h.company)

	// entity-subtraction mode
	httpkit.PostJSON[domain.SimpleInput](r, "/extract_simple", h.simple)
}

// RegisterRoot mounts the unversioned debug route kept for sidecar parity
func RegisterRoot(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.EntsInput](r, "/debug/ents", h.ents)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /v1/xp/parse Xp xpParse
// @Summary Extract structured experience fields from a raw block
// @Tags Xp
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Experience block"
// @Success 200 {object} domain.ParseResult "ok"
// @Router /v1/xp/parse [post]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.Parse(r.Context(), in)
}

// swagger:route POST /v1/xp/company Xp xpCompany
// @Summary Extract the company fields only (legacy shape)
// @Tags Xp
// @Accept json
// @Produce json
// @Param payload body domain.CompanyInput true "Experience block"
// @Success 200 {object} domain.CompanyResult "ok"
// @Router /v1/xp/company [post]
func (h *handlers) company(r *stdhttp.Request, in domain.CompanyInput) (any, error) {
	return h.svc.Company(r.Context(), in)
}

// swagger:route POST /v1/xp/extract_simple Xp xpExtractSimple
// @Summary Entity-subtraction extraction over a flat text
// @Tags Xp
// @Accept json
// @Produce json
// @Param payload body domain.SimpleInput true "Flat text"
// @Success 200 {object} domain.SimpleResult "ok"
// @Router /v1/xp/extract_simple [post]
func (h *handlers) simple(r *stdhttp.Request, in domain.SimpleInput) (any, error) {
	return h.svc.Simple(r.Context(), in)
}

// swagger:route POST /debug/ents Xp xpDebugEnts
// @Summary Raw tagger entity dump
// @Tags Xp
// @Accept json
// @Produce json
// @Param payload body domain.EntsInput true "Text to tag"
// @Success 200 {array} nlp.Entity "ok"
// @Router /debug/ents [post]
func (h *handlers) ents(r *stdhttp.Request, in domain.EntsInput) (any, error) {
	return h.svc.Ents(r.Context(), in)
}
