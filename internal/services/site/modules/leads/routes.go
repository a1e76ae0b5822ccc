package leads

import (
	"net/http"

	"github.com/baucmind/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.DemoRequest, h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.DemoRequest, h.handleSubmit)
	mux.HandleFunc(routepath.DemoPrefix+"{rest...}", h.handleNotFound)
}
