package category

import "context"

// Category is a question grouping. The set is seeded externally and
// read-only from this service's perspective.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Store is the persistence contract for categories.
type Store interface {
	ListAll(ctx context.Context) ([]Category, error)
}

// Service exposes read access to categories.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListAll returns every category ordered by ascending id.
func (s *Service) ListAll(ctx context.Context) ([]Category, error) {
	return s.store.ListAll(ctx)
}

// Map returns categories keyed by id, the shape listing responses embed.
func (s *Service) Map(ctx context.Context) (map[int]string, error) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(all))
	for _, c := range all {
		out[c.ID] = c.Type
	}
	return out, nil
}
