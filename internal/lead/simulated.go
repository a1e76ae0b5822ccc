package lead

import (
	"context"
	"time"
)

// Simulated accepts every request after Delay without storing anything.
type Simulated struct {
	Delay time.Duration
	Now   func() time.Time
}

// NewSimulated returns a submitter that answers after delay.
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay, Now: time.Now}
}

// SubmitLead waits for the delay and issues a receipt. Cancelling ctx aborts
// the wait with a *SubmissionError.
func (s *Simulated) SubmitLead(ctx context.Context, fields Fields) (Receipt, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, &SubmissionError{Err: ctx.Err()}
		case <-timer.C:
		}
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return NewReceipt(fields, now())
}
