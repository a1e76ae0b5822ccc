// Package public serves the root page, health checks and unknown paths.
package public

import (
	"net/http"

	module "github.com/baucmind/site/internal/services/site/module"
	"github.com/baucmind/site/internal/services/site/routepath"
)

// Module provides the root routes.
type Module struct{}

// New returns a public module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
