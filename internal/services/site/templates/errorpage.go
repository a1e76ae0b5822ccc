package templates

import (
	"net/http"

	"github.com/baucmind/site/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorPageTitle is the document title of an error page.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, errorTitleKey(statusCode))
}

// ErrorState renders an error screen that replaces the current one.
func ErrorState(statusCode int, message string, loc Localizer) g.Node {
	return Div(ID(screenID), Class("screen screen-error"), g.Attr("data-status", itoa(statusCode)),
		Section(Class("card error-card"),
			Strong(Class("error-code"), g.Text(itoa(statusCode))),
			H1(g.Text(T(loc, errorTitleKey(statusCode)))),
			g.If(message != "", P(g.Text(message))),
			A(Href(routepath.Root), Class("btn btn-primary"), g.Text(T(loc, "core.error.home"))),
		),
	)
}

func errorTitleKey(statusCode int) string {
	if statusCode == http.StatusNotFound {
		return "core.error.not_found"
	}
	return "core.error.internal"
}
