package historysync

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baucmind/site/internal/services/site/platform/httpx"
	"github.com/baucmind/site/internal/studio/registry"
	"github.com/baucmind/site/internal/studio/shell"
)

func TestRecorderCapturesShellPushes(t *testing.T) {
	t.Parallel()

	rec := &Recorder{}
	sh := shell.New(registry.Default(), rec, shell.StudioEntry(registry.StepIdeas))
	sh.Advance()

	if !rec.Changed() {
		t.Fatal("Changed() = false after Advance")
	}
	rr := httptest.NewRecorder()
	rec.Annotate(rr)
	if got := rr.Header().Get(httpx.HeaderPushURL); got != "/?mode=studio&step=script" {
		t.Fatalf("HX-Push-Url = %q, want %q", got, "/?mode=studio&step=script")
	}
}

func TestRecorderNoOpWritesNothing(t *testing.T) {
	t.Parallel()

	rec := &Recorder{}
	sh := shell.New(registry.Default(), rec, shell.StudioEntry(registry.StepPerformance))
	sh.Advance()

	if op, _ := rec.Last(); op != OpNone {
		t.Fatalf("Last() op = %v, want OpNone", op)
	}
	rr := httptest.NewRecorder()
	rec.Annotate(rr)
	if len(rr.Header()) != 0 {
		t.Fatalf("headers = %v, want none", rr.Header())
	}
}

func TestReplaceDoesNotDowngradePush(t *testing.T) {
	t.Parallel()

	rec := &Recorder{}
	rec.Push(shell.StudioEntry(shell.Home))
	rec.Replace(shell.StudioEntry(registry.StepBriefing))
	if op, e := rec.Last(); op != OpPush || e.Step != registry.StepBriefing {
		t.Fatalf("Last() = (%v, %+v), want push of briefing", op, e)
	}

	only := &Recorder{}
	only.Replace(shell.LandingEntry())
	rr := httptest.NewRecorder()
	only.Annotate(rr)
	if got := rr.Header().Get(httpx.HeaderReplaceURL); got != "/" {
		t.Fatalf("HX-Replace-Url = %q, want /", got)
	}
}

func TestRedirectUsesSeeOther(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Redirect(rr, httptest.NewRequest(http.MethodPost, "/studio/nav", nil), shell.StudioEntry(shell.Home))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/?mode=studio" {
		t.Fatalf("Location = %q, want %q", got, "/?mode=studio")
	}
}
