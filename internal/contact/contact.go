// Package contact simulates the contact form round trip. Nothing is stored or delivered.
package contact

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"solanki.dev/portfolio/internal/observability"
)

// Confirmation is shown after a submission completes.
const Confirmation = "Thank you for your message! I'll get back to you soon."

// DefaultDelay is the simulated delivery time.
const DefaultDelay = time.Second

// ErrIncomplete is returned when a required field is empty.
var ErrIncomplete = errors.New("contact: name, email and message are required")

// State tracks a form through a submission.
type State int

const (
	Idle State = iota
	Sending
	Sent
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	}
	return "unknown"
}

// Form carries the visitor's input and the rendered notice.
type Form struct {
	Name    string
	Email   string
	Message string
	State   State
	// Notice is the confirmation after Sent, or a prompt after ErrIncomplete.
	Notice string
}

// Missing lists the empty required fields in form order. Whitespace counts as content.
func (f *Form) Missing() []string {
	var out []string
	if f.Name == "" {
		out = append(out, "name")
	}
	if f.Email == "" {
		out = append(out, "email")
	}
	if f.Message == "" {
		out = append(out, "message")
	}
	return out
}

// Sending reports whether a submission is in flight.
func (f *Form) Sending() bool { return f.State == Sending }

// Sent reports whether the last submission completed.
func (f *Form) Sent() bool { return f.State == Sent }

// Option customises a Simulator.
type Option func(*Simulator)

// WithDelay overrides DefaultDelay. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(s *Simulator) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithWait replaces the timer, letting tests observe the Sending state.
func WithWait(wait func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Simulator) {
		if wait != nil {
			s.wait = wait
		}
	}
}

// WithIDGenerator replaces the ULID source used to tag log lines.
func WithIDGenerator(gen func() string) Option {
	return func(s *Simulator) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// Simulator pretends to deliver contact messages.
type Simulator struct {
	delay time.Duration
	wait  func(ctx context.Context, d time.Duration) error
	newID func() string
}

// NewSimulator builds a Simulator with DefaultDelay unless overridden.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		delay: DefaultDelay,
		wait:  sleep,
		newID: func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay returns the configured simulated delivery time.
func (s *Simulator) Delay() time.Duration { return s.delay }

// Submit validates presence of every field, waits the configured delay and resets the form.
// Email format is intentionally not checked. On ErrIncomplete the form keeps its values.
// If ctx ends during the wait the form stays in Sending and ctx.Err() is returned.
func (s *Simulator) Submit(ctx context.Context, f *Form) error {
	logger := observability.FromContext(ctx)
	if missing := f.Missing(); len(missing) > 0 {
		f.State = Idle
		f.Notice = "Please fill in your name, email and message."
		logger.Info("contact submission incomplete", zap.Strings("missing", missing))
		return ErrIncomplete
	}

	id := s.newID()
	f.State = Sending
	f.Notice = ""
	logger.Debug("contact submission sending", zap.String("submission_id", id))

	if err := s.wait(ctx, s.delay); err != nil {
		logger.Warn("contact submission aborted", zap.String("submission_id", id), zap.Error(err))
		return err
	}

	f.Name, f.Email, f.Message = "", "", ""
	f.State = Sent
	f.Notice = Confirmation
	logger.Info("contact submission simulated",
		zap.String("submission_id", id),
		zap.Duration("delay", s.delay),
	)
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
