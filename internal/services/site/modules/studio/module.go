// Package studio serves the studio wizard: shell navigation, view-local step
// updates, gated advances and the live check streams.
package studio

import (
	"net/http"

	module "github.com/baucmind/site/internal/services/site/module"
	"github.com/baucmind/site/internal/services/site/routepath"
)

// Module provides studio routes.
type Module struct{}

// New returns a studio module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "studio" }

// Mount wires studio route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.StudioPrefix, Handler: mux}, nil
}
