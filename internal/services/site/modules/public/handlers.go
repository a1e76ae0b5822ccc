package public

import (
	"io"
	"net/http"
	"net/url"

	module "github.com/baucmind/site/internal/services/site/module"
	"github.com/baucmind/site/internal/services/site/platform/historysync"
	"github.com/baucmind/site/internal/services/site/platform/httpx"
	sitei18n "github.com/baucmind/site/internal/services/site/platform/i18n"
	"github.com/baucmind/site/internal/services/site/platform/weberror"
	"github.com/baucmind/site/internal/services/site/screen"
	"github.com/baucmind/site/internal/studio/shell"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// handleRoot shows the entry named by the address. Every load of / is a
// history restore: the browser already holds the entry, so nothing is pushed.
func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	steps := h.deps.StepRegistry()
	query := r.URL.Query()
	sh := shell.New(steps, nil, shell.LandingEntry())
	sh.Restore(shell.ParseEntry(query, steps))
	current := sh.Current()

	if !isCanonical(query, current) {
		if !httpx.IsHTMXRequest(r) {
			// Persist an explicit language before the address drops it.
			sitei18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
			http.Redirect(w, r, current.URL(), http.StatusFound)
			return
		}
		recorder := &historysync.Recorder{}
		recorder.Replace(current)
		recorder.Annotate(w)
	}
	if err := screen.Write(w, r, h.deps, current, screen.Options{}); err != nil {
		h.deps.Logf("render root: %v", err)
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, "", h.deps)
}

// isCanonical reports whether the shell parameters of query already spell
// entry. The language parameter is not part of the entry.
func isCanonical(query url.Values, entry shell.Entry) bool {
	shellQuery := url.Values{}
	for _, key := range []string{shell.ModeParam, shell.StepParam} {
		if values, ok := query[key]; ok {
			shellQuery[key] = values
		}
	}
	return shellQuery.Encode() == entry.Query().Encode()
}
