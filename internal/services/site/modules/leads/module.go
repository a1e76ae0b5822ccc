// Package leads serves the demo request dialog.
package leads

import (
	"net/http"

	module "github.com/baucmind/site/internal/services/site/module"
	"github.com/baucmind/site/internal/services/site/routepath"
)

// Module provides demo request routes.
type Module struct{}

// New returns a leads module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "leads" }

// Mount wires demo request handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.DemoPrefix, Handler: mux}, nil
}
