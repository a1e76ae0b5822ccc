// Package weberror renders shared error responses for site modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/baucmind/site/internal/services/site/module"
	apperrors "github.com/baucmind/site/internal/services/site/platform/errors"
	"github.com/baucmind/site/internal/services/site/platform/httpx"
	sitei18n "github.com/baucmind/site/internal/services/site/platform/i18n"
	"github.com/baucmind/site/internal/services/site/platform/pagerender"
	sitetemplates "github.com/baucmind/site/internal/services/site/templates"
	"github.com/baucmind/site/internal/studio/shell"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc sitei18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(sitetemplates.T(loc, key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page for full-page and htmx
// requests. message may be empty.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, message string, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	entry := shell.LandingEntry()
	if r != nil {
		entry = shell.ParseEntry(r.URL.Query(), deps.StepRegistry())
	}
	page := pagerender.PageContext(w, r, deps, entry)
	if httpx.IsHTMXRequest(r) {
		// Error screens replace the whole screen whatever the original target.
		w.Header().Set(httpx.HeaderRetarget, "#screen")
		w.Header().Set(httpx.HeaderReswap, "outerHTML")
	}
	err := pagerender.WriteModulePage(w, r, page, pagerender.ModulePage{
		Title:      sitetemplates.ErrorPageTitle(statusCode, page.Loc),
		StatusCode: statusCode,
		Fragment:   sitetemplates.Component(sitetemplates.ErrorState(statusCode, message, page.Loc)),
	})
	if err != nil {
		deps.Logf("render error page: %v", err)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	loc, _ := sitei18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, PublicMessage(loc, err), deps)
		return
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
