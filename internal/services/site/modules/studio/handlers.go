package studio

import (
	"net/http"
	"strings"

	module "github.com/baucmind/site/internal/services/site/module"
	apperrors "github.com/baucmind/site/internal/services/site/platform/errors"
	"github.com/baucmind/site/internal/services/site/platform/historysync"
	"github.com/baucmind/site/internal/services/site/platform/httpx"
	"github.com/baucmind/site/internal/services/site/platform/weberror"
	"github.com/baucmind/site/internal/services/site/screen"
	sitetemplates "github.com/baucmind/site/internal/services/site/templates"
	"github.com/baucmind/site/internal/studio/shell"
	"github.com/baucmind/site/internal/studio/steps"
)

// gateBlockedKey is shown when a next request fails its step gate.
const gateBlockedKey = "studio.gate.blocked"

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// handleIndex sends bare /studio/ visits to the studio home entry.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, shell.StudioEntry(shell.Home).URL(), http.StatusFound)
}

// handleNav applies one shell operation to the entry carried by the form.
func (h handlers) handleNav(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", err), h.deps)
		return
	}
	reg := h.deps.StepRegistry()
	recorder := &historysync.Recorder{}
	sh := shell.New(reg, recorder, shell.ParseEntry(r.PostForm, reg))

	var err error
	switch op := strings.TrimSpace(r.PostForm.Get(sitetemplates.NavOpField)); op {
	case sitetemplates.OpStudio:
		sh.ToStudio()
	case sitetemplates.OpLanding:
		sh.ToLanding()
	case sitetemplates.OpHome:
		sh.GoHome()
	case sitetemplates.OpAdvance:
		sh.Advance()
	case sitetemplates.OpRetreat:
		sh.Retreat()
	case sitetemplates.OpJump:
		err = sh.JumpTo(strings.TrimSpace(r.PostForm.Get(sitetemplates.NavTargetField)))
	default:
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "unknown navigation op "+op), h.deps)
		return
	}
	if err != nil {
		h.deps.Logf("studio nav: %v", err)
		if h.deps.DevMode {
			weberror.WriteModuleError(w, r, err, h.deps)
			return
		}
	}
	h.respond(w, r, sh.Current(), recorder)
}

// handleStep re-renders a step view from its posted local state. Local
// updates never touch history.
func (h handlers) handleStep(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.stepEntry(w, r)
	if !ok {
		return
	}
	if err := screen.WriteStep(w, r, h.deps, entry, r.PostForm); err != nil {
		h.deps.Logf("render step %s: %v", entry.Step, err)
	}
}

// handleNext advances past a step whose gate holds. A failing gate keeps the
// visitor on the step with the posted state and a notice.
func (h handlers) handleNext(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.stepEntry(w, r)
	if !ok {
		return
	}
	if !steps.Ready(entry.Step, r.PostForm) {
		err := screen.Write(w, r, h.deps, entry, screen.Options{
			Form:       r.PostForm,
			NoticeKey:  gateBlockedKey,
			StatusCode: http.StatusUnprocessableEntity,
		})
		if err != nil {
			h.deps.Logf("render gated step %s: %v", entry.Step, err)
		}
		return
	}
	recorder := &historysync.Recorder{}
	sh := shell.New(h.deps.StepRegistry(), recorder, entry)
	sh.Advance()
	h.respond(w, r, sh.Current(), recorder)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, "", h.deps)
}

// stepEntry resolves the step path value and parses the posted form.
func (h handlers) stepEntry(w http.ResponseWriter, r *http.Request) (shell.Entry, bool) {
	id := strings.TrimSpace(r.PathValue("step"))
	if !h.deps.StepRegistry().Contains(id) {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindNotFound, "unknown step "+id), h.deps)
		return shell.Entry{}, false
	}
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", err), h.deps)
		return shell.Entry{}, false
	}
	return shell.StudioEntry(id), true
}

// respond shows current after a shell operation. htmx swaps the screen and
// learns the new address from headers; plain posts follow a redirect.
func (h handlers) respond(w http.ResponseWriter, r *http.Request, current shell.Entry, recorder *historysync.Recorder) {
	if !httpx.IsHTMXRequest(r) {
		historysync.Redirect(w, r, current)
		return
	}
	recorder.Annotate(w)
	if err := screen.Write(w, r, h.deps, current, screen.Options{}); err != nil {
		h.deps.Logf("render screen: %v", err)
	}
}
