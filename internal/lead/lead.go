// Package lead captures demo requests from the landing page.
//
// Submission goes through a Submitter so the site can run with a simulated
// inbox or a SQLite one. Failures are recoverable: callers keep the entered
// fields and let the visitor retry.
package lead

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/baucmind/site/internal/platform/id"
	"github.com/gosimple/slug"
)

// Form field names of the demo request.
const (
	FieldName              = "name"
	FieldEmail             = "email"
	FieldCompany           = "company"
	FieldPhone             = "phone"
	FieldRole              = "role"
	FieldCompanySize       = "company_size"
	FieldCurrentChallenges = "current_challenges"
	FieldPreferredDate     = "preferred_date"
	FieldPreferredTime     = "preferred_time"
	FieldMessage           = "message"
)

// Fields is a demo request as typed by the visitor.
type Fields struct {
	Name              string
	Email             string
	Company           string
	Phone             string
	Role              string
	CompanySize       string
	CurrentChallenges string
	PreferredDate     string
	PreferredTime     string
	Message           string
}

// FieldsFromForm reads and trims a demo request from form values.
func FieldsFromForm(form url.Values) Fields {
	get := func(key string) string { return strings.TrimSpace(form.Get(key)) }
	return Fields{
		Name:              get(FieldName),
		Email:             get(FieldEmail),
		Company:           get(FieldCompany),
		Phone:             get(FieldPhone),
		Role:              get(FieldRole),
		CompanySize:       get(FieldCompanySize),
		CurrentChallenges: get(FieldCurrentChallenges),
		PreferredDate:     get(FieldPreferredDate),
		PreferredTime:     get(FieldPreferredTime),
		Message:           get(FieldMessage),
	}
}

// Values returns the fields keyed by form name.
func (f Fields) Values() url.Values {
	return url.Values{
		FieldName:              {f.Name},
		FieldEmail:             {f.Email},
		FieldCompany:           {f.Company},
		FieldPhone:             {f.Phone},
		FieldRole:              {f.Role},
		FieldCompanySize:       {f.CompanySize},
		FieldCurrentChallenges: {f.CurrentChallenges},
		FieldPreferredDate:     {f.PreferredDate},
		FieldPreferredTime:     {f.PreferredTime},
		FieldMessage:           {f.Message},
	}
}

// FieldError reports one invalid field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks the minimum contact details.
func (f Fields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &FieldError{Field: FieldName, Reason: "required"}
	}
	if strings.TrimSpace(f.Email) == "" {
		return &FieldError{Field: FieldEmail, Reason: "required"}
	}
	addr, err := mail.ParseAddress(f.Email)
	if err != nil || addr.Address != f.Email {
		return &FieldError{Field: FieldEmail, Reason: "invalid"}
	}
	return nil
}

// Receipt acknowledges an accepted request.
type Receipt struct {
	ID          string
	Reference   string
	SubmittedAt time.Time
}

// NewReceipt issues a receipt for f. The reference is a readable slug of the
// company (or name) with a short id suffix.
func NewReceipt(f Fields, now time.Time) (Receipt, error) {
	leadID, err := id.NewID()
	if err != nil {
		return Receipt{}, err
	}
	base := f.Company
	if strings.TrimSpace(base) == "" {
		base = f.Name
	}
	reference := leadID[:6]
	if s := slug.Make(base); s != "" {
		reference = s + "-" + reference
	}
	return Receipt{ID: leadID, Reference: reference, SubmittedAt: now.UTC()}, nil
}

// Submitter delivers a demo request.
type Submitter interface {
	SubmitLead(ctx context.Context, fields Fields) (Receipt, error)
}

// SubmissionError is a recoverable delivery failure. The visitor may retry
// with the same fields.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return "lead submission failed"
	}
	return "lead submission failed: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Submit validates fields and hands them to s. Any delivery failure is
// returned as *SubmissionError.
func Submit(ctx context.Context, s Submitter, fields Fields) (Receipt, error) {
	if err := fields.Validate(); err != nil {
		return Receipt{}, err
	}
	if s == nil {
		return Receipt{}, &SubmissionError{Err: errors.New("submitter is not configured")}
	}
	receipt, err := s.SubmitLead(ctx, fields)
	if err != nil {
		var subErr *SubmissionError
		if errors.As(err, &subErr) {
			return Receipt{}, err
		}
		return Receipt{}, &SubmissionError{Err: err}
	}
	return receipt, nil
}
