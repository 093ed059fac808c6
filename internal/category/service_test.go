package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubStore struct {
	categories []Category
	err        error
}

func (s *stubStore) ListAll(_ context.Context) ([]Category, error) {
	return s.categories, s.err
}

func TestServiceMap(t *testing.T) {
	svc := NewService(&stubStore{categories: []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Sports"},
	}})

	m, err := svc.Map(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[int]string{1: "Science", 2: "Sports"}, m)
}

func TestServiceMapEmpty(t *testing.T) {
	svc := NewService(&stubStore{})

	m, err := svc.Map(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, m)
}

func TestServiceMapStoreError(t *testing.T) {
	storeErr := errors.New("db down")
	svc := NewService(&stubStore{err: storeErr})

	_, err := svc.Map(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
