package clipboard

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	clocktesting "k8s.io/utils/clock/testing"

	fperrors "github.com/entrhq/fpview/pkg/errors"
	"github.com/entrhq/fpview/pkg/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type button struct {
	mu    sync.Mutex
	state ControlState
}

func (b *button) ControlState() ControlState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *button) SetControlState(s ControlState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = s
}

type recorder struct {
	texts []string
	err   error
}

func (r *recorder) WriteAll(text string) error {
	if r.err != nil {
		return r.err
	}
	r.texts = append(r.texts, text)
	return nil
}

func newTestService(w Writer) (*Service, *clocktesting.FakeClock) {
	clk := clocktesting.NewFakeClock(time.Unix(0, 0))
	return New(WithWriter(w), WithClock(clk)), clk
}

func TestCopy_ShowsConfirmationThenReverts(t *testing.T) {
	w := &recorder{}
	svc, clk := newTestService(w)
	btn := &button{state: ControlState{Label: "Copy"}}

	res := svc.Copy(context.Background(), "abc123", btn)
	require.NoError(t, res.Err)
	assert.True(t, res.Copied)
	assert.Equal(t, []string{"abc123"}, w.texts)
	assert.Equal(t, ControlState{Label: CopiedLabel, Accent: AccentSuccess}, btn.ControlState())
	assert.True(t, svc.Pending())

	clk.Step(DefaultConfirmationWindow - time.Millisecond)
	assert.Equal(t, CopiedLabel, btn.ControlState().Label)

	clk.Step(time.Millisecond)
	assert.Equal(t, ControlState{Label: "Copy"}, btn.ControlState())
	assert.False(t, svc.Pending())
}

func TestCopy_CustomWindow(t *testing.T) {
	clk := clocktesting.NewFakeClock(time.Unix(0, 0))
	svc := New(WithWriter(&recorder{}), WithClock(clk), WithConfirmationWindow(500*time.Millisecond))
	btn := &button{state: ControlState{Label: "Copy"}}

	svc.Copy(context.Background(), "h", btn)
	clk.Step(500 * time.Millisecond)
	assert.Equal(t, "Copy", btn.ControlState().Label)
}

func TestCopy_FailureLeavesControlUntouched(t *testing.T) {
	var logs bytes.Buffer
	clk := clocktesting.NewFakeClock(time.Unix(0, 0))
	svc := New(
		WithWriter(&recorder{err: errors.New("no clipboard utility")}),
		WithClock(clk),
		WithLogger(logging.NewWriterLogger("clipboard", &logs)),
	)
	btn := &button{state: ControlState{Label: "Copy"}}

	res := svc.Copy(context.Background(), "abc", btn)
	require.Error(t, res.Err)
	assert.False(t, res.Copied)
	assert.Equal(t, fperrors.ErrCodeClipboard, fperrors.CodeOf(res.Err))
	assert.Equal(t, ControlState{Label: "Copy"}, btn.ControlState())
	assert.False(t, svc.Pending())
	assert.False(t, clk.HasWaiters())
	assert.Contains(t, logs.String(), "[clipboard] [ERROR] Copy failed")
	assert.Contains(t, logs.String(), "no clipboard utility")
}

func TestCopy_RepeatWithinWindowRestoresOriginal(t *testing.T) {
	svc, clk := newTestService(&recorder{})
	btn := &button{state: ControlState{Label: "Copy"}}

	svc.Copy(context.Background(), "a", btn)
	clk.Step(time.Second)
	svc.Copy(context.Background(), "a", btn)

	// The first revert was cancelled; the second one is a full window away.
	clk.Step(time.Second)
	assert.Equal(t, CopiedLabel, btn.ControlState().Label)

	clk.Step(time.Second)
	assert.Equal(t, ControlState{Label: "Copy"}, btn.ControlState())
}

func TestCopy_SecondControlRestoresFirst(t *testing.T) {
	svc, clk := newTestService(&recorder{})
	first := &button{state: ControlState{Label: "Copy hash"}}
	second := &button{state: ControlState{Label: "Copy JSON"}}

	svc.Copy(context.Background(), "a", first)
	svc.Copy(context.Background(), "b", second)

	assert.Equal(t, "Copy hash", first.ControlState().Label)
	assert.Equal(t, CopiedLabel, second.ControlState().Label)

	clk.Step(DefaultConfirmationWindow)
	assert.Equal(t, "Copy JSON", second.ControlState().Label)
}

func TestCopy_CancelledContext(t *testing.T) {
	w := &recorder{}
	svc, _ := newTestService(w)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := svc.Copy(ctx, "a", &button{})
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Empty(t, w.texts)
}

func TestCopy_NilControl(t *testing.T) {
	svc, clk := newTestService(&recorder{})
	res := svc.Copy(context.Background(), "a", nil)
	assert.True(t, res.Copied)
	assert.False(t, clk.HasWaiters())
}

func TestClose_RestoresImmediately(t *testing.T) {
	svc, clk := newTestService(&recorder{})
	btn := &button{state: ControlState{Label: "Copy"}}

	svc.Copy(context.Background(), "a", btn)
	svc.Close()

	assert.Equal(t, "Copy", btn.ControlState().Label)
	assert.False(t, svc.Pending())
	assert.False(t, clk.HasWaiters())
}

func TestWriterFunc(t *testing.T) {
	var got string
	w := WriterFunc(func(s string) error { got = s; return nil })
	require.NoError(t, w.WriteAll("x"))
	assert.Equal(t, "x", got)
}
