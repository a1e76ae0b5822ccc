package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/baucmind/site/internal/services/site/module"
)

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return s.mount, s.err
}

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "one", Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	if _, err := (Composer{}).Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsInvalidMounts(t *testing.T) {
	t.Parallel()

	cases := []module.Module{
		stubModule{id: "noprefix", mount: module.Mount{Handler: noContent()}},
		stubModule{id: "nohandler", mount: module.Mount{Prefix: "/x/"}},
		stubModule{id: "broken", err: errors.New("boom")},
	}
	for _, feature := range cases {
		if _, err := (Composer{}).Compose(ComposeInput{Modules: []module.Module{feature}}); err == nil {
			t.Fatalf("%s: expected mount error", feature.ID())
		}
	}
}

func TestComposeMountsModules(t *testing.T) {
	t.Parallel()

	h, err := BuildRootHandler(Config{Modules: []module.Module{
		stubModule{id: "demo", mount: module.Mount{Prefix: "demo", Handler: noContent()}},
	}})
	if err != nil {
		t.Fatalf("BuildRootHandler() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/demo/request", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeRejectsCrossOriginMutations(t *testing.T) {
	t.Parallel()

	h, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "demo", mount: module.Mount{Prefix: "/demo/", Handler: noContent()}},
	}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "http://bauc.example/demo/request", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}

	same := httptest.NewRequest(http.MethodPost, "http://bauc.example/demo/request", nil)
	same.Header.Set("Origin", "http://bauc.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, same)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("same-origin status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestNormalizePrefix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":         "",
		" ":        "",
		"demo":     "/demo/",
		"/demo":    "/demo/",
		"/studio/": "/studio/",
		"/":        "/",
	}
	for in, want := range cases {
		if got := normalizePrefix(in); got != want {
			t.Fatalf("normalizePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}
