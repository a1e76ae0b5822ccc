package leads

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/baucmind/site/internal/lead"
	module "github.com/baucmind/site/internal/services/site/module"
	"github.com/baucmind/site/internal/services/site/routepath"
)

type fakeSubmitter struct {
	err   error
	delay time.Duration
	got   lead.Fields
}

func (f *fakeSubmitter) SubmitLead(ctx context.Context, fields lead.Fields) (lead.Receipt, error) {
	f.got = fields
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return lead.Receipt{}, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if f.err != nil {
		return lead.Receipt{}, f.err
	}
	return lead.Receipt{ID: "lead-1", Reference: "acme-lead01"}, nil
}

func mountHandler(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.DemoPrefix {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.DemoPrefix)
	}
	return mount.Handler
}

func submit(form url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, routepath.DemoRequest, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func validForm() url.Values {
	return url.Values{
		lead.FieldName:    {"Ana Souza"},
		lead.FieldEmail:   {"ana@acme.example"},
		lead.FieldCompany: {"Acme"},
		lead.FieldMessage: {"Quero ver o estúdio"},
	}
}

func TestModuleIDReturnsLeads(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "leads" {
		t.Fatalf("ID() = %q, want %q", got, "leads")
	}
}

func TestFormRendersModalFragment(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.DemoRequest, nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	mountHandler(t, module.Dependencies{}).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, `<div id="modal"`) || !strings.Contains(body, "<form") {
		t.Fatalf("body = %q, want modal fragment with form", body)
	}
}

func TestFormWithoutScriptsOpensOverLanding(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t, module.Dependencies{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DemoRequest, nil))
	body := rr.Body.String()
	for _, marker := range []string{"<!doctype html>", "screen-landing", "modal-root"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestSubmitSuccess(t *testing.T) {
	t.Parallel()

	submitter := &fakeSubmitter{}
	rr := httptest.NewRecorder()
	mountHandler(t, module.Dependencies{Leads: submitter}).ServeHTTP(rr, submit(validForm(), true))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `data-dismiss-after="3000"`) || !strings.Contains(body, "acme-lead01") {
		t.Fatalf("body = %q, want success view", body)
	}
	if submitter.got.Company != "Acme" {
		t.Fatalf("submitted company = %q, want %q", submitter.got.Company, "Acme")
	}
}

func TestSubmitInvalidEmailKeepsFields(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Set(lead.FieldEmail, "not-an-email")
	submitter := &fakeSubmitter{}
	rr := httptest.NewRecorder()
	mountHandler(t, module.Dependencies{Leads: submitter}).ServeHTTP(rr, submit(form, true))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `value="not-an-email"`) || !strings.Contains(body, `aria-invalid="true"`) {
		t.Fatalf("body = %q, want re-rendered form with field error", body)
	}
	if submitter.got.Name != "" {
		t.Fatal("invalid request reached the submitter")
	}
}

func TestSubmitFailureAllowsRetry(t *testing.T) {
	t.Parallel()

	submitter := &fakeSubmitter{err: errors.New("inbox offline")}
	rr := httptest.NewRecorder()
	mountHandler(t, module.Dependencies{Leads: submitter}).ServeHTTP(rr, submit(validForm(), true))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `role="alert"`) || !strings.Contains(body, `value="Ana Souza"`) {
		t.Fatalf("body = %q, want form with notice and typed values", body)
	}
	if strings.Contains(body, "inbox offline") {
		t.Fatal("notice leaked the internal error")
	}
}

func TestSubmitTimesOut(t *testing.T) {
	t.Parallel()

	submitter := &fakeSubmitter{delay: time.Second}
	rr := httptest.NewRecorder()
	deps := module.Dependencies{Leads: submitter, LeadSubmitTimeout: 10 * time.Millisecond}
	mountHandler(t, deps).ServeHTTP(rr, submit(validForm(), true))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestSubmitWithoutSubmitterIsUnavailable(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t, module.Dependencies{}).ServeHTTP(rr, submit(validForm(), false))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rr.Body.String(), "<!doctype html>") {
		t.Fatal("plain post did not receive the full page")
	}
}

func TestUnknownDemoPath(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t, module.Dependencies{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DemoPrefix+"nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
