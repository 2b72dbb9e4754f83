package review

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashstate/cashstate-go/pkg/api"
	"github.com/cashstate/cashstate-go/pkg/domain"
)

func makeTxns(n int) []domain.Transaction {
	txns := make([]domain.Transaction, n)
	for i := range txns {
		txns[i] = domain.Transaction{ID: fmt.Sprintf("t%d", i), Amount: -10}
	}
	return txns
}

// recorder is a fake backend: it applies flushed updates to a map, so
// tests can check what state repeated flushes converge on.
type recorder struct {
	flushes int
	applied map[string]api.CategoryUpdate
	fail    bool
}

func newRecorder() *recorder {
	return &recorder{applied: map[string]api.CategoryUpdate{}}
}

func (r *recorder) flush(ctx context.Context, updates []api.CategoryUpdate) error {
	r.flushes++
	if r.fail {
		return fmt.Errorf("backend unavailable")
	}
	for _, u := range updates {
		r.applied[u.TransactionID] = u
	}
	return nil
}

func TestLeftSwipeSkipsWithoutCategorizing(t *testing.T) {
	rec := newRecorder()
	s := New(makeTxns(3), rec.flush)

	out, err := s.SwipeLeft(context.Background(), DefaultThreshold+1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, out)

	// nothing queued, nothing assigned
	assert.Equal(t, 0, s.PendingCount())
	for _, tx := range s.Transactions() {
		assert.Empty(t, tx.CategoryID)
	}

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "t1", cur.ID)
}

func TestShortSwipeIsRejected(t *testing.T) {
	rec := newRecorder()
	s := New(makeTxns(3), rec.flush)
	s.Select("Food", "")

	out, err := s.SwipeLeft(context.Background(), DefaultThreshold-1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, out)

	out, err = s.SwipeRight(context.Background(), DefaultThreshold-1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, out)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "t0", cur.ID)
	assert.Equal(t, 0, s.PendingCount())
}

func TestRightSwipeWithoutSelectionSnapsBack(t *testing.T) {
	rec := newRecorder()
	s := New(makeTxns(3), rec.flush)

	out, err := s.SwipeRight(context.Background(), DefaultThreshold+50)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, out)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "t0", cur.ID)
	assert.Empty(t, cur.CategoryID)
	assert.Equal(t, 0, s.PendingCount())
}

func TestRightSwipeCommitsSelection(t *testing.T) {
	rec := newRecorder()
	s := New(makeTxns(2), rec.flush)

	s.Select("Food", "Coffee")
	out, err := s.SwipeRight(context.Background(), DefaultThreshold+1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCommitted, out)

	txns := s.Transactions()
	assert.Equal(t, "Food", txns[0].CategoryID)
	assert.Equal(t, "Coffee", txns[0].SubcategoryID)
	assert.Equal(t, 1, s.PendingCount())

	// the selection does not carry over to the next card
	out, err = s.SwipeRight(context.Background(), DefaultThreshold+1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, out)
}

func TestAutoFlushAtThreshold(t *testing.T) {
	rec := newRecorder()
	s := New(makeTxns(15), rec.flush)
	ctx := context.Background()

	for i := 0; i < 9; i++ {
		s.Select("Food", "")
		_, err := s.SwipeRight(ctx, DefaultThreshold+1)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, rec.flushes)
	assert.Equal(t, 9, s.PendingCount())

	// the tenth commit triggers the flush
	s.Select("Food", "")
	_, err := s.SwipeRight(ctx, DefaultThreshold+1)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.flushes)
	assert.Equal(t, 0, s.PendingCount())
	assert.Len(t, rec.applied, 10)
}

func TestCloseFlushesRemainder(t *testing.T) {
	rec := newRecorder()
	s := New(makeTxns(3), rec.flush)
	ctx := context.Background()

	s.Select("Food", "")
	_, err := s.SwipeRight(ctx, DefaultThreshold+1)
	require.NoError(t, err)

	require.NoError(t, s.Close(ctx))
	assert.Equal(t, 1, rec.flushes)
	assert.Len(t, rec.applied, 1)

	// nothing pending, closing again is a no-op
	require.NoError(t, s.Close(ctx))
	assert.Equal(t, 1, rec.flushes)
}

func TestFailedFlushKeepsUpdatesQueued(t *testing.T) {
	rec := newRecorder()
	rec.fail = true
	s := New(makeTxns(12), rec.flush)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		s.Select("Food", "")
		_, err := s.SwipeRight(ctx, DefaultThreshold+1)
		if i == 9 {
			assert.Error(t, err)
		} else {
			require.NoError(t, err)
		}
	}
	assert.Equal(t, 10, s.PendingCount())

	// the backend recovers, the retry delivers the same batch
	rec.fail = false
	require.NoError(t, s.Close(ctx))
	assert.Equal(t, 0, s.PendingCount())
	assert.Len(t, rec.applied, 10)
}

func TestDuplicateAssignmentIsIdempotent(t *testing.T) {
	rec := newRecorder()
	update := []api.CategoryUpdate{{TransactionID: "t1", CategoryID: "Food", SubcategoryID: "Coffee"}}
	ctx := context.Background()

	require.NoError(t, rec.flush(ctx, update))
	once := rec.applied["t1"]

	require.NoError(t, rec.flush(ctx, update))
	assert.Equal(t, once, rec.applied["t1"])
	assert.Len(t, rec.applied, 1)
}

func TestSessionCompletes(t *testing.T) {
	rec := newRecorder()
	s := New(makeTxns(2), rec.flush)
	ctx := context.Background()

	assert.False(t, s.Complete())

	_, err := s.SwipeLeft(ctx, DefaultThreshold+1)
	require.NoError(t, err)
	s.Select("Food", "")
	_, err = s.SwipeRight(ctx, DefaultThreshold+1)
	require.NoError(t, err)

	assert.True(t, s.Complete())
	_, ok := s.Current()
	assert.False(t, ok)

	// gestures after the end do nothing
	out, err := s.SwipeLeft(ctx, DefaultThreshold+1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, out)
}
