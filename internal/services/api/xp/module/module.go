// Package module wires xp into the API using modkit
package module

import (
	"net/http"

	modkit "candiqo/internal/modkit"
	"candiqo/internal/modkit/httpkit"
	str "candiqo/internal/platform/strings"
	"candiqo/internal/services/api/xp/domain"
	xphttp "candiqo/internal/services/api/xp/http"
	xpsvc "candiqo/internal/services/api/xp/service"
)

// Ports exposes the xp service to other modules and to the root router
type Ports struct {
	Parser domain.ServicePort
}

// Module implements the xp module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc xpsvc.Service
}

// New constructs the xp module
func New(deps modkit.Deps, svcOpt xpsvc.Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("xp"), modkit.WithPrefix("/xp")}, opts...)...)

	svc := xpsvc.New(deps.Tagger, svcOpt)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Parser: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		xphttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
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

// MountRootRoutes mounts the unversioned debug routes on the root router
func (m *Module) MountRootRoutes(r httpkit.Router) {
	xphttp.RegisterRoot(r, m.svc)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports for cross wiring
func (m *Module) Ports() any { return m.ports }
