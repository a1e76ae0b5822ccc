// Package historysync turns shell history writes into browser history.
//
// htmx requests learn about new entries through HX-Push-Url and
// HX-Replace-Url. Plain form posts are answered with 303 See Other so the
// browser itself records the entry.
package historysync

import (
	"net/http"

	"github.com/baucmind/site/internal/services/site/platform/httpx"
	"github.com/baucmind/site/internal/studio/shell"
)

// Op is the kind of history write.
type Op int

const (
	OpNone Op = iota
	OpPush
	OpReplace
)

// Recorder collects the history writes of one request. It implements
// shell.History.
type Recorder struct {
	op    Op
	entry shell.Entry
}

var _ shell.History = (*Recorder)(nil)

// Push records a new entry.
func (r *Recorder) Push(e shell.Entry) {
	r.op = OpPush
	r.entry = e
}

// Replace records an in-place rewrite. It never downgrades a push.
func (r *Recorder) Replace(e shell.Entry) {
	if r.op != OpPush {
		r.op = OpReplace
	}
	r.entry = e
}

// Last returns the latest write.
func (r *Recorder) Last() (Op, shell.Entry) {
	return r.op, r.entry
}

// Changed reports whether any entry was pushed.
func (r *Recorder) Changed() bool {
	return r.op == OpPush
}

// Annotate sets the htmx history header for the recorded write. It must run
// before the response header is written.
func (r *Recorder) Annotate(w http.ResponseWriter) {
	switch r.op {
	case OpPush:
		w.Header().Set(httpx.HeaderPushURL, r.entry.URL())
	case OpReplace:
		w.Header().Set(httpx.HeaderReplaceURL, r.entry.URL())
	}
}

// Redirect answers a plain form post with the address of current. htmx
// requests are not redirected; callers render a fragment instead.
func Redirect(w http.ResponseWriter, req *http.Request, current shell.Entry) {
	http.Redirect(w, req, current.URL(), http.StatusSeeOther)
}
