package studio

import (
	"net/http"

	"github.com/baucmind/site/internal/services/site/platform/httpx"
	"github.com/baucmind/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.StudioPrefix+"{$}", h.handleIndex)

	mux.HandleFunc(http.MethodPost+" "+routepath.StudioNav, h.handleNav)
	mux.HandleFunc(http.MethodGet+" "+routepath.StudioNav, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodPost+" "+routepath.StudioStepsPrefix+"{step}", h.handleStep)
	mux.HandleFunc(http.MethodGet+" "+routepath.StudioStepsPrefix+"{step}", httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodPost+" "+routepath.StudioStepsPrefix+"{step}/next", h.handleNext)
	mux.HandleFunc(http.MethodGet+" "+routepath.StudioStepsPrefix+"{step}/next", httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodGet+" "+routepath.StudioChecksPrefix+"{run}", h.handleChecks)

	mux.HandleFunc(routepath.StudioPrefix+"{rest...}", h.handleNotFound)
}
