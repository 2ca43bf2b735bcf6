// Package api provides the HTTP API for the application
package api

import (
	"candiqo/internal/nlp"
	"candiqo/internal/platform/config"
	"candiqo/internal/platform/logger"
	phttp "candiqo/internal/platform/net/http"

	"candiqo/internal/modkit"
	"candiqo/internal/modkit/httpkit"
	"candiqo/internal/modkit/module"
	"candiqo/internal/modkit/swaggerkit"

	metamod "candiqo/internal/services/api/meta/module"
	xpmod "candiqo/internal/services/api/xp/module"
	xpsvc "candiqo/internal/services/api/xp/service"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger
	Tagger nlp.Tagger

	// TaggerLoadedAt is the unix timestamp the model came up, surfaced on /health
	TaggerLoadedAt int64

	XP xpsvc.Options

	EnableSwagger  bool
	EnableProfiler bool
}

// rootMounter is implemented by modules that also own unversioned routes
type rootMounter interface {
	MountRootRoutes(httpkit.Router)
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		Tagger: opt.Tagger,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps, opt.TaggerLoadedAt),
		xpmod.New(deps, opt.XP),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	// unversioned routes kept wire-compatible with the original sidecar
	for _, m := range mods {
		if rm, ok := m.(rootMounter); ok {
			rm.MountRootRoutes(r)
		}
	}
}
