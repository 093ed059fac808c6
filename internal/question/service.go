package question

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors surfaced by the question service and its store.
var (
	ErrNotFound     = errors.New("question not found")
	ErrInvalidInput = errors.New("invalid question input")
)

// Store is the persistence contract the service depends on. Implemented
// by repository.QuestionRepository against Postgres, and by stubs in tests.
type Store interface {
	ListAll(ctx context.Context) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	ByCategory(ctx context.Context, categoryID int) ([]Question, error)
	Insert(ctx context.Context, params CreateParams) (Question, error)
	Delete(ctx context.Context, id int) (Question, error)
}

// Service exposes read and write operations over the question bank.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListAll returns every question ordered by ascending id.
func (s *Service) ListAll(ctx context.Context) ([]Question, error) {
	return s.store.ListAll(ctx)
}

// Search returns questions whose text contains term as a case-insensitive
// substring, ordered by ascending id. An empty term matches everything.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	return s.store.Search(ctx, term)
}

// ByCategory returns questions of one category ordered by ascending id.
// Unknown categories yield an empty result, not an error.
func (s *Service) ByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	return s.store.ByCategory(ctx, categoryID)
}

// Create validates the input and inserts a new question. Presence is
// checked per field; a zero category or difficulty is a value, not an
// absence. Validation failures wrap ErrInvalidInput.
func (s *Service) Create(ctx context.Context, input CreateInput) (Question, error) {
	if strings.TrimSpace(input.Question) == "" {
		return Question{}, fmt.Errorf("%w: question is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Answer) == "" {
		return Question{}, fmt.Errorf("%w: answer is required", ErrInvalidInput)
	}
	if input.Category == nil {
		return Question{}, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if input.Difficulty == nil {
		return Question{}, fmt.Errorf("%w: difficulty is required", ErrInvalidInput)
	}

	return s.store.Insert(ctx, CreateParams{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   *input.Category,
		Difficulty: *input.Difficulty,
	})
}

// Delete removes a question permanently and returns the removed record.
// Returns ErrNotFound when no question with that id exists.
func (s *Service) Delete(ctx context.Context, id int) (Question, error) {
	return s.store.Delete(ctx, id)
}
