package templates

import (
	"sort"

	"github.com/baucmind/site/internal/services/site/routepath"
	"github.com/baucmind/site/internal/studio/shell"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Form names of the studio navigation endpoint.
const (
	NavOpField     = "op"
	NavTargetField = "target"
)

// Navigation operations posted to the studio nav endpoint.
const (
	OpStudio  = "studio"
	OpLanding = "landing"
	OpHome    = "home"
	OpAdvance = "advance"
	OpRetreat = "retreat"
	OpJump    = "jump"
)

const (
	screenID   = "screen"
	stepViewID = "step-view"
)

// entryFields carries the current history entry through a form post.
func entryFields(entry shell.Entry) g.Node {
	query := entry.Query()
	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return g.Map(keys, func(key string) g.Node {
		return hidden(key, query.Get(key))
	})
}

func hidden(name, value string) g.Node {
	return Input(Type("hidden"), Name(name), Value(value))
}

// swapScreen makes an element replace the whole screen with the response.
func swapScreen(path string) g.Node {
	return g.Group([]g.Node{
		g.Attr("hx-post", path),
		g.Attr("hx-target", "#"+screenID),
		g.Attr("hx-swap", "outerHTML"),
	})
}

// navForm posts one shell operation for the current entry.
func navForm(page PageContext, op, target, class string, children ...g.Node) g.Node {
	return Form(Method("post"), Action(routepath.StudioNav), Class(classes("nav-form", class)),
		swapScreen(routepath.StudioNav),
		entryFields(page.Entry),
		hidden(NavOpField, op),
		g.If(target != "", hidden(NavTargetField, target)),
		g.Group(children),
	)
}

func submitButton(class string, children ...g.Node) g.Node {
	return Button(Type("submit"), Class(classes("btn", class)), g.Group(children))
}
