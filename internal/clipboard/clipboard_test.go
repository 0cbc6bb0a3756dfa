package clipboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBoard is an in-memory clipboard that records every write.
type fakeBoard struct {
	mu       sync.Mutex
	content  string
	writes   []string
	readErr  error
	writeErr error
}

func (b *fakeBoard) ReadAll() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.content, b.readErr
}

func (b *fakeBoard) WriteAll(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return b.writeErr
	}
	b.content = text
	b.writes = append(b.writes, text)
	return nil
}

func (b *fakeBoard) set(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.content = text
}

// manualTimer lets the test decide when the ttl is over
type manualTimer struct {
	fire chan time.Time
	got  chan time.Duration
}

func newManualTimer() *manualTimer {
	return &manualTimer{fire: make(chan time.Time), got: make(chan time.Duration, 1)}
}

func (m *manualTimer) after(d time.Duration) <-chan time.Time {
	m.got <- d
	return m.fire
}

func newTestCopier(board Board, timer *manualTimer) *copier {
	return &copier{board: board, after: timer.after}
}

func TestCopy_ClearsAfterTTL(t *testing.T) {
	board := &fakeBoard{}
	timer := newManualTimer()
	c := newTestCopier(board, timer)

	done := make(chan error, 1)
	go func() { done <- c.Copy(context.Background(), "hunter2", 5*time.Second) }()

	assert.Equal(t, 5*time.Second, <-timer.got)
	content, _ := board.ReadAll()
	assert.Equal(t, "hunter2", content)

	timer.fire <- time.Now()
	require.NoError(t, <-done)

	content, _ = board.ReadAll()
	assert.Empty(t, content)
	assert.Equal(t, []string{"hunter2", ""}, board.writes)
}

func TestCopy_LeavesNewerContent(t *testing.T) {
	board := &fakeBoard{}
	timer := newManualTimer()
	c := newTestCopier(board, timer)

	done := make(chan error, 1)
	go func() { done <- c.Copy(context.Background(), "hunter2", time.Second) }()

	<-timer.got
	board.set("something the user copied")
	timer.fire <- time.Now()
	require.NoError(t, <-done)

	content, _ := board.ReadAll()
	assert.Equal(t, "something the user copied", content)
	assert.Equal(t, []string{"hunter2"}, board.writes)
}

func TestCopy_ClearsOnCancel(t *testing.T) {
	board := &fakeBoard{}
	timer := newManualTimer()
	c := newTestCopier(board, timer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Copy(ctx, "hunter2", time.Hour) }()

	<-timer.got
	cancel()
	require.NoError(t, <-done)

	content, _ := board.ReadAll()
	assert.Empty(t, content)
}

func TestCopy_DefaultTTL(t *testing.T) {
	board := &fakeBoard{}
	timer := newManualTimer()
	c := newTestCopier(board, timer)

	done := make(chan error, 1)
	go func() { done <- c.Copy(context.Background(), "hunter2", 0) }()

	assert.Equal(t, DefaultTTL, <-timer.got)
	timer.fire <- time.Now()
	require.NoError(t, <-done)
}

func TestCopy_Errors(t *testing.T) {
	errBoard := errors.New("no display")

	t.Run("empty text", func(t *testing.T) {
		c := newTestCopier(&fakeBoard{}, newManualTimer())
		assert.ErrorIs(t, c.Copy(context.Background(), "", time.Second), ErrEmptyText)
	})

	t.Run("write fails", func(t *testing.T) {
		c := newTestCopier(&fakeBoard{writeErr: errBoard}, newManualTimer())
		assert.ErrorIs(t, c.Copy(context.Background(), "x", time.Second), errBoard)
	})

	t.Run("read before clear fails", func(t *testing.T) {
		board := &fakeBoard{readErr: errBoard}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := newTestCopier(board, newManualTimer())
		err := c.Copy(ctx, "x", time.Second)
		assert.ErrorIs(t, err, errBoard)
		assert.Contains(t, err.Error(), "read clipboard before clearing")
	})
}
