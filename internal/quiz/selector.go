package quiz

import (
	"context"
	"math/rand/v2"

	"github.com/sahanavr/trivia-api/internal/question"
)

// Store lists questions eligible for a quiz round: everything outside the
// exclusion set, narrowed to one category when categoryID is non-zero.
type Store interface {
	ListEligible(ctx context.Context, excludedIDs []int, categoryID int) ([]question.Question, error)
}

// Selector picks the next quiz question. It holds no session state: the
// exclusion set travels with every request.
type Selector struct {
	store Store
}

func NewSelector(store Store) *Selector {
	return &Selector{store: store}
}

// PickNext returns one eligible question chosen uniformly at random, or
// nil when the eligible set is exhausted (the quiz is complete). The
// package-level rand source is locked internally, so concurrent calls
// are safe.
func (s *Selector) PickNext(ctx context.Context, excludedIDs []int, categoryID int) (*question.Question, error) {
	eligible, err := s.store.ListEligible(ctx, excludedIDs, categoryID)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	picked := eligible[rand.IntN(len(eligible))]
	return &picked, nil
}
