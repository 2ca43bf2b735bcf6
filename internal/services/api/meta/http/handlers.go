// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"candiqo/internal/core/version"
	"candiqo/internal/modkit/httpkit"
	"candiqo/internal/nlp"
)

// Pinger is satisfied by taggers that expose a reachability check
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Tagger      nlp.Tagger
	// LoadedAt is the unix timestamp the tagger model came up
	LoadedAt int64
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// RegisterRoot mounts the unversioned health route kept for sidecar parity.
// It bypasses the response envelope: callers of the original sidecar expect
// the bare payload
func RegisterRoot(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpkit.WriteBare(w, http.StatusOK, HealthResponse{
			Status:   "ok",
			Model:    h.deps.Tagger.Model(),
			LoadedAt: h.deps.LoadedAt,
		})
	})
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the root health payload
// swagger:model
type HealthResponse struct {
	Status   string `json:"status"    example:"ok"`
	Model    string `json:"model"     example:"fr_core_news_md"`
	LoadedAt int64  `json:"loaded_at" example:"1725000000"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"tagger"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:8090 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-31T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"candiqo-api"`
	Model   string `json:"model"   example:"fr_core_news_md"`
	Started string `json:"started" example:"2026-08-31T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /v1/meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /v1/meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 2*time.Second)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	tagger := check("tagger", h.deps.Tagger)

	overall := "ok"
	if tagger.Status == "fail" {
		overall = "fail"
	} else if tagger.Status != "ok" {
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{tagger},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /v1/meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /v1/meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /v1/meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /v1/meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Model:   h.deps.Tagger.Model(),
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}
