package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/baucmind/site/internal/lead"
	"github.com/baucmind/site/internal/lead/sqlite/migrations"
	sqlitemigrate "github.com/baucmind/site/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store persists demo requests.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// StoredLead is an inbox row.
type StoredLead struct {
	Receipt lead.Receipt
	Fields  lead.Fields
}

// Open opens and migrates a lead inbox.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SubmitLead stores fields and returns the issued receipt.
func (s *Store) SubmitLead(ctx context.Context, fields lead.Fields) (lead.Receipt, error) {
	if s == nil || s.sqlDB == nil {
		return lead.Receipt{}, &lead.SubmissionError{Err: fmt.Errorf("storage is not configured")}
	}
	receipt, err := lead.NewReceipt(fields, s.now())
	if err != nil {
		return lead.Receipt{}, &lead.SubmissionError{Err: err}
	}
	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO leads (
			id, reference, name, email, company, phone, role, company_size,
			current_challenges, preferred_date, preferred_time, message, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		receipt.ID,
		receipt.Reference,
		fields.Name,
		fields.Email,
		fields.Company,
		fields.Phone,
		fields.Role,
		fields.CompanySize,
		fields.CurrentChallenges,
		fields.PreferredDate,
		fields.PreferredTime,
		fields.Message,
		receipt.SubmittedAt.UnixMilli(),
	)
	if err != nil {
		return lead.Receipt{}, &lead.SubmissionError{Err: fmt.Errorf("insert lead: %w", err)}
	}
	return receipt, nil
}

// ListLeads returns the most recent requests first.
func (s *Store) ListLeads(ctx context.Context, limit int) ([]StoredLead, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, reference, name, email, company, phone, role, company_size,
			current_challenges, preferred_date, preferred_time, message, submitted_at
		 FROM leads
		 ORDER BY submitted_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []StoredLead
	for rows.Next() {
		var row StoredLead
		var submittedAt int64
		if err := rows.Scan(
			&row.Receipt.ID,
			&row.Receipt.Reference,
			&row.Fields.Name,
			&row.Fields.Email,
			&row.Fields.Company,
			&row.Fields.Phone,
			&row.Fields.Role,
			&row.Fields.CompanySize,
			&row.Fields.CurrentChallenges,
			&row.Fields.PreferredDate,
			&row.Fields.PreferredTime,
			&row.Fields.Message,
			&submittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		row.Receipt.SubmittedAt = time.UnixMilli(submittedAt).UTC()
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}
	return out, nil
}

var _ lead.Submitter = (*Store)(nil)
