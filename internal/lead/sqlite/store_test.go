package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/baucmind/site/internal/lead"
	_ "modernc.org/sqlite"
)

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leads.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store, path
}

func TestOpenRunsMigrations(t *testing.T) {
	_, path := openTestStore(t)

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	var name string
	if err := sqlDB.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'leads'").Scan(&name); err != nil {
		t.Fatalf("leads table missing: %v", err)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	store, path := openTestStore(t)
	_ = store

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := again.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestSubmitLeadRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	base := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	first := lead.Fields{Name: "Ana", Email: "ana@acme.com", Company: "Acme", CompanySize: "11-50", Message: "Olá"}
	second := lead.Fields{Name: "Bruno", Email: "bruno@zeta.io"}
	firstReceipt, err := store.SubmitLead(context.Background(), first)
	if err != nil {
		t.Fatalf("submit first: %v", err)
	}
	if _, err := store.SubmitLead(context.Background(), second); err != nil {
		t.Fatalf("submit second: %v", err)
	}

	rows, err := store.ListLeads(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Fields.Name != "Bruno" {
		t.Fatalf("rows[0].Name = %q, want most recent first", rows[0].Fields.Name)
	}
	if rows[1].Fields != first {
		t.Fatalf("rows[1].Fields = %+v, want %+v", rows[1].Fields, first)
	}
	got := rows[1].Receipt
	if got.ID != firstReceipt.ID || got.Reference != firstReceipt.Reference || !got.SubmittedAt.Equal(firstReceipt.SubmittedAt) {
		t.Fatalf("rows[1].Receipt = %+v, want %+v", got, firstReceipt)
	}
}

func TestSubmitLeadAfterCloseIsSubmissionError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	_, err = store.SubmitLead(context.Background(), lead.Fields{Name: "Ana", Email: "ana@acme.com"})
	var subErr *lead.SubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("SubmitLead() error = %v, want *lead.SubmissionError", err)
	}
}
