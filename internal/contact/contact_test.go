package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubmitClearsFormAndConfirms(t *testing.T) {
	t.Parallel()

	var during State
	var waited time.Duration
	form := &Form{Name: "Ada", Email: "not-an-email", Message: "Hello"}
	sim := NewSimulator(WithWait(func(_ context.Context, d time.Duration) error {
		during = form.State
		waited = d
		return nil
	}), WithIDGenerator(func() string { return "01TEST" }))

	require.Equal(t, Idle, form.State)
	require.NoError(t, sim.Submit(context.Background(), form))

	require.Equal(t, Sending, during)
	require.Equal(t, DefaultDelay, waited)
	require.Equal(t, Sent, form.State)
	require.Equal(t, Confirmation, form.Notice)
	require.Empty(t, form.Name)
	require.Empty(t, form.Email)
	require.Empty(t, form.Message)
}

func TestSubmitRejectsEmptyFields(t *testing.T) {
	t.Parallel()

	sim := NewSimulator(WithDelay(0))
	form := &Form{Name: "Ada", Email: "", Message: "Hi"}
	err := sim.Submit(context.Background(), form)
	require.True(t, errors.Is(err, ErrIncomplete))
	require.Equal(t, Idle, form.State)
	require.Equal(t, []string{"email"}, form.Missing())
	require.Equal(t, "Ada", form.Name)
	require.Equal(t, "Hi", form.Message)
	require.NotEmpty(t, form.Notice)
}

func TestSubmitAcceptsWhitespaceFields(t *testing.T) {
	t.Parallel()

	sim := NewSimulator(WithDelay(0))
	form := &Form{Name: "   ", Email: "\t", Message: " "}
	require.Empty(t, form.Missing())
	require.NoError(t, sim.Submit(context.Background(), form))
	require.Equal(t, Sent, form.State)
	require.Equal(t, Confirmation, form.Notice)
	require.Empty(t, form.Name)
}

func TestSubmitHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := NewSimulator(WithDelay(time.Hour))
	form := &Form{Name: "a", Email: "b", Message: "c"}
	err := sim.Submit(ctx, form)
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, Sending, form.State)
	require.Equal(t, "a", form.Name)
}

func TestSubmitWaitsRealDelay(t *testing.T) {
	t.Parallel()

	sim := NewSimulator(WithDelay(20 * time.Millisecond))
	form := &Form{Name: "a", Email: "b", Message: "c"}
	start := time.Now()
	require.NoError(t, sim.Submit(context.Background(), form))
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	require.Equal(t, Sent, form.State)
}

func TestWithDelayClampsNegative(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Duration(0), NewSimulator(WithDelay(-time.Second)).Delay())
	require.Equal(t, DefaultDelay, NewSimulator().Delay())
}

func TestStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "idle", Idle.String())
	require.Equal(t, "sending", Sending.String())
	require.Equal(t, "sent", Sent.String())
	require.Equal(t, "unknown", State(9).String())
}
