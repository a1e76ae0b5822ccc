package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/baucmind/site/internal/platform/requestctx"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("a"), nil, mark("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got := strings.Join(order, ","); got != "a,b,handler" {
		t.Fatalf("order = %q, want %q", got, "a,b,handler")
	}
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	t.Parallel()

	var seen, inContext string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(HeaderRequestID)
		inContext = requestctx.RequestIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.HasPrefix(seen, "site-") {
		t.Fatalf("generated request id = %q, want site- prefix", seen)
	}
	if rr.Header().Get(HeaderRequestID) != seen {
		t.Fatalf("echoed id = %q, want %q", rr.Header().Get(HeaderRequestID), seen)
	}
	if inContext != seen {
		t.Fatalf("context id = %q, want %q", inContext, seen)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "given")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Header().Get(HeaderRequestID) != "given" {
		t.Fatalf("echoed id = %q, want %q", rr.Header().Get(HeaderRequestID), "given")
	}
}

func TestRecoverPanicWrites500(t *testing.T) {
	t.Parallel()

	h := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	MethodNotAllowed(http.MethodGet, http.MethodPost)(rr, httptest.NewRequest(http.MethodDelete, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, POST" {
		t.Fatalf("Allow = %q, want %q", got, "GET, POST")
	}
}

func TestWantsFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{name: "plain", want: false},
		{name: "htmx", headers: map[string]string{HeaderRequest: "true"}, want: true},
		{name: "restore", headers: map[string]string{HeaderRequest: "true", HeaderHistoryRestore: "true"}, want: false},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		if got := WantsFragment(req); got != tc.want {
			t.Fatalf("%s: WantsFragment() = %t, want %t", tc.name, got, tc.want)
		}
	}
}

func TestWriteRedirect(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteRedirect(rr, httptest.NewRequest(http.MethodPost, "/studio/nav", nil), "/?mode=studio")
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/?mode=studio" {
		t.Fatalf("plain redirect = %d %q, want 303 /?mode=studio", rr.Code, rr.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodPost, "/studio/nav", nil)
	req.Header.Set(HeaderRequest, "true")
	rr = httptest.NewRecorder()
	WriteRedirect(rr, req, "/")
	if rr.Code != http.StatusOK || rr.Header().Get(HeaderRedirect) != "/" {
		t.Fatalf("htmx redirect = %d %q, want 200 /", rr.Code, rr.Header().Get(HeaderRedirect))
	}
}
