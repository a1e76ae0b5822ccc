package leads

import (
	"context"
	"errors"
	"net/http"

	"github.com/baucmind/site/internal/lead"
	"github.com/baucmind/site/internal/platform/requestctx"
	"github.com/baucmind/site/internal/platform/timeouts"
	module "github.com/baucmind/site/internal/services/site/module"
	apperrors "github.com/baucmind/site/internal/services/site/platform/errors"
	"github.com/baucmind/site/internal/services/site/platform/httpx"
	"github.com/baucmind/site/internal/services/site/platform/pagerender"
	"github.com/baucmind/site/internal/services/site/platform/weberror"
	"github.com/baucmind/site/internal/services/site/screen"
	sitetemplates "github.com/baucmind/site/internal/services/site/templates"
	"github.com/baucmind/site/internal/studio/shell"
	g "maragu.dev/gomponents"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	h.writeDialog(w, r, http.StatusOK, sitetemplates.DemoForm{})
}

// handleSubmit delivers a demo request. Invalid fields and delivery failures
// re-open the dialog with everything the visitor typed.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", err), h.deps)
		return
	}
	fields := lead.FieldsFromForm(r.PostForm)

	timeout := h.deps.LeadSubmitTimeout
	if timeout <= 0 {
		timeout = timeouts.LeadSubmit
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()
	receipt, err := lead.Submit(ctx, h.deps.Leads, fields)

	form := sitetemplates.DemoForm{Fields: fields}
	status := http.StatusOK
	var fieldErr *lead.FieldError
	switch {
	case err == nil:
		h.deps.Logf("demo request accepted: reference=%s request_id=%s", receipt.Reference, requestctx.RequestIDFromContext(ctx))
		form = sitetemplates.DemoForm{Receipt: &receipt}
	case errors.As(err, &fieldErr):
		form.FieldError = fieldErr
		status = apperrors.HTTPStatus(err)
	default:
		h.deps.Logf("demo request failed: request_id=%s err=%v", requestctx.RequestIDFromContext(ctx), err)
		page := pagerender.PageContext(w, r, h.deps, shell.LandingEntry())
		form.Notice = weberror.PublicMessage(page.Loc, err)
		status = apperrors.HTTPStatus(err)
	}
	h.writeDialog(w, r, status, form)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, "", h.deps)
}

// writeDialog swaps the dialog into the modal slot for htmx and serves the
// landing page with the dialog open otherwise.
func (h handlers) writeDialog(w http.ResponseWriter, r *http.Request, status int, form sitetemplates.DemoForm) {
	modal := func(page sitetemplates.PageContext) g.Node {
		return sitetemplates.DemoModal(page, form)
	}
	var err error
	if httpx.WantsFragment(r) {
		page := pagerender.PageContext(w, r, h.deps, shell.LandingEntry())
		err = pagerender.WriteModulePage(w, r, page, pagerender.ModulePage{
			StatusCode: status,
			Fragment:   sitetemplates.Component(modal(page)),
		})
	} else {
		err = screen.Write(w, r, h.deps, shell.LandingEntry(), screen.Options{StatusCode: status, Modal: modal})
	}
	if err != nil {
		h.deps.Logf("render demo dialog: %v", err)
	}
}
