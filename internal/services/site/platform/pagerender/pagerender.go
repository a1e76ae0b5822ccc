// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/baucmind/site/internal/services/site/module"
	"github.com/baucmind/site/internal/services/site/platform/httpx"
	sitei18n "github.com/baucmind/site/internal/services/site/platform/i18n"
	sitetemplates "github.com/baucmind/site/internal/services/site/templates"
	"github.com/baucmind/site/internal/studio/shell"
	g "maragu.dev/gomponents"
)

// ModulePage describes a module page response for both full-page and htmx
// flows.
type ModulePage struct {
	Title      string
	StatusCode int
	// Fragment is what htmx requests receive and what full pages wrap.
	Fragment templ.Component
	// Modal opens a dialog on full-page renders.
	Modal g.Node
}

// PageContext resolves the request chrome for entry.
func PageContext(w http.ResponseWriter, r *http.Request, deps module.Dependencies, entry shell.Entry) sitetemplates.PageContext {
	loc, lang := sitei18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	return sitetemplates.PageContext{
		Lang:      lang.String(),
		Loc:       loc,
		Entry:     entry,
		Languages: sitei18n.LanguageOptions(lang),
	}
}

// WriteModulePage writes page as a fragment for htmx swaps and as a full
// document otherwise. History restores always get the full document.
func WriteModulePage(w http.ResponseWriter, r *http.Request, page sitetemplates.PageContext, modulePage ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := modulePage.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := modulePage.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	ctx := httpx.RequestContext(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if httpx.WantsFragment(r) {
		w.WriteHeader(statusCode)
		return fragment.Render(ctx, w)
	}
	w.WriteHeader(statusCode)
	layout := sitetemplates.Layout(page, sitetemplates.LayoutOptions{Title: modulePage.Title, Modal: modulePage.Modal})
	return layout.Render(templ.WithChildren(ctx, fragment), w)
}
