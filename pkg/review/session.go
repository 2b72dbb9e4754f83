// Package review drives the manual categorization flow: one transaction
// presented at a time, swiped left to skip or right to commit the chosen
// category, with commits batched to the backend.
package review

import (
	"context"
	"sync"

	"github.com/cashstate/cashstate-go/pkg/api"
	"github.com/cashstate/cashstate-go/pkg/domain"
)

const (
	// DefaultThreshold is the swipe distance, in points, past which a
	// gesture counts.
	DefaultThreshold = 120.0

	// flushEvery is how many pending updates accumulate before an
	// automatic flush.
	flushEvery = 10
)

// Outcome is what a swipe did.
type Outcome int

const (
	// OutcomeRejected: the gesture didn't take; the card snaps back.
	OutcomeRejected Outcome = iota
	// OutcomeSkipped: moved on without assigning a category.
	OutcomeSkipped
	// OutcomeCommitted: the selected category was applied and queued.
	OutcomeCommitted
)

// Flusher persists a batch of categorizations. Normally this wraps
// Client.BatchCategorize.
type Flusher func(ctx context.Context, updates []api.CategoryUpdate) error

// Session walks a fixed set of transactions. All methods are safe for
// concurrent use, though the flow is single-gesture by nature.
type Session struct {
	mu sync.Mutex

	txns  []domain.Transaction
	index int

	selCategory    string
	selSubcategory string

	pending []api.CategoryUpdate
	flush   Flusher

	threshold float64
}

type Option func(*Session)

// WithThreshold overrides the swipe distance threshold.
func WithThreshold(t float64) Option {
	return func(s *Session) { s.threshold = t }
}

// New starts a review session over txns. flush is called with batches of
// pending updates; a flush error keeps the batch queued for the next
// attempt.
func New(txns []domain.Transaction, flush Flusher, opts ...Option) *Session {
	s := &Session{
		txns:      txns,
		flush:     flush,
		threshold: DefaultThreshold,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Current returns the transaction being presented, or false when the
// session is complete.
func (s *Session) Current() (*domain.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.txns) {
		return nil, false
	}
	cp := s.txns[s.index]
	return &cp, true
}

// Complete reports whether every transaction has been presented.
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index >= len(s.txns)
}

// Select chooses the category to commit on the next rightward swipe.
func (s *Session) Select(categoryID, subcategoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selCategory = categoryID
	s.selSubcategory = subcategoryID
}

// SwipeLeft skips the current transaction. Never changes any category.
func (s *Session) SwipeLeft(ctx context.Context, distance float64) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.txns) || distance < s.threshold {
		return OutcomeRejected, nil
	}

	s.advanceLocked()
	return OutcomeSkipped, nil
}

// SwipeRight commits the selected category to the current transaction
// and queues it for batch save. Without a selection the gesture is
// rejected and nothing changes.
func (s *Session) SwipeRight(ctx context.Context, distance float64) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.txns) || distance < s.threshold {
		return OutcomeRejected, nil
	}
	if s.selCategory == "" {
		return OutcomeRejected, nil
	}

	// apply locally, then queue
	tx := &s.txns[s.index]
	tx.CategoryID = s.selCategory
	tx.SubcategoryID = s.selSubcategory
	s.pending = append(s.pending, api.CategoryUpdate{
		TransactionID: tx.ID,
		CategoryID:    s.selCategory,
		SubcategoryID: s.selSubcategory,
	})

	s.advanceLocked()

	var err error
	if len(s.pending) >= flushEvery {
		err = s.flushLocked(ctx)
	}
	return OutcomeCommitted, err
}

// PendingCount is the number of updates awaiting flush.
func (s *Session) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Transactions returns the session's working copy, local assignments
// included.
func (s *Session) Transactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Close flushes whatever is still pending. Call when the flow is
// dismissed, complete or not.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	return s.flushLocked(ctx)
}

func (s *Session) advanceLocked() {
	s.index++
	s.selCategory = ""
	s.selSubcategory = ""
}

// flushLocked hands the pending batch to the flusher. On failure the
// batch stays queued, so delivery is at-least-once; the backend treats
// duplicate identical assignments as overwrites.
func (s *Session) flushLocked(ctx context.Context) error {
	batch := s.pending
	if err := s.flush(ctx, batch); err != nil {
		return err
	}
	s.pending = s.pending[:0]
	return nil
}
