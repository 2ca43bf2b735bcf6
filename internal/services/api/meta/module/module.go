// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "candiqo/internal/modkit"
	"candiqo/internal/modkit/httpkit"
	str "candiqo/internal/platform/strings"

	metahttp "candiqo/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	httpDeps metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options.
// loadedAt is the unix timestamp the tagger model came up
func New(deps modkit.Deps, loadedAt int64, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		httpDeps: metahttp.Deps{
			ServiceName: "candiqo-api",
			StartedAt:   time.Now(),
			Tagger:      deps.Tagger,
			LoadedAt:    loadedAt,
		},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, m.httpDeps)
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// MountRootRoutes mounts the unversioned health route on the root router
func (m *Module) MountRootRoutes(r httpkit.Router) {
	metahttp.RegisterRoot(r, m.httpDeps)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
