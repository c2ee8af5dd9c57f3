package catalog

import (
	"context"
	"testing"

	"github.com/mysmileproject/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory catalogStore; the catalog is tiny and the service
// logic is what matters here.
type memStore struct {
	smiles map[string]*domain.CuratedSmile
}

func newMemStore() *memStore {
	return &memStore{smiles: map[string]*domain.CuratedSmile{}}
}

func (m *memStore) Put(_ context.Context, s *domain.CuratedSmile) error {
	cp := *s
	m.smiles[s.SmileID] = &cp
	return nil
}

func (m *memStore) Get(_ context.Context, smileID string) (*domain.CuratedSmile, error) {
	s, ok := m.smiles[smileID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) ListEnabled(_ context.Context) ([]domain.CuratedSmile, error) {
	var out []domain.CuratedSmile
	for _, s := range m.smiles {
		if s.Enable {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) Update(_ context.Context, smileID string, updates map[string]interface{}) error {
	s, ok := m.smiles[smileID]
	if !ok {
		return domain.ErrNotFound
	}
	if v, ok := updates["image_url"]; ok {
		s.ImageURL = v.(string)
	}
	if v, ok := updates["description"]; ok {
		s.Description = v.(string)
	}
	if v, ok := updates["enable"]; ok {
		s.Enable = v.(bool)
	}
	return nil
}

func (m *memStore) HardDelete(_ context.Context, smileID string) error {
	delete(m.smiles, smileID)
	return nil
}

func TestEnsureSeeded_PopulatesEmptyCatalog(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	require.NoError(t, svc.EnsureSeeded(context.Background()))
	smiles, err := svc.ListEnabled(context.Background())
	require.NoError(t, err)
	assert.Len(t, smiles, len(seedSmiles))
}

func TestEnsureSeeded_Idempotent(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	require.NoError(t, svc.EnsureSeeded(context.Background()))
	require.NoError(t, svc.EnsureSeeded(context.Background()))
	smiles, _ := svc.ListEnabled(context.Background())
	assert.Len(t, smiles, len(seedSmiles))
}

func TestCreateAndUpdate(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	created, err := svc.Create(context.Background(), CreateSmileRequest{
		ImageURL:    "https://example.com/smile.jpg",
		Description: "A test smile",
	})
	require.NoError(t, err)
	assert.True(t, created.Enable)

	off := false
	updated, err := svc.Update(context.Background(), created.SmileID, UpdateSmileRequest{Enable: &off})
	require.NoError(t, err)
	assert.False(t, updated.Enable)
}

func TestUpdate_NoFields(t *testing.T) {
	svc := NewService(newMemStore())
	_, err := svc.Update(context.Background(), "x", UpdateSmileRequest{})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestRandomEnabled_SkipsDisabled(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	created, err := svc.Create(context.Background(), CreateSmileRequest{
		ImageURL:    "https://example.com/only.jpg",
		Description: "The only enabled one",
	})
	require.NoError(t, err)

	off := false
	_, err = svc.Create(context.Background(), CreateSmileRequest{
		ImageURL:    "https://example.com/off.jpg",
		Description: "Disabled",
		Enable:      &off,
	})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := svc.RandomEnabled(context.Background())
		require.NoError(t, err)
		assert.Equal(t, created.SmileID, got.SmileID)
	}
}

func TestRandomEnabled_EmptyCatalog(t *testing.T) {
	svc := NewService(newMemStore())
	_, err := svc.RandomEnabled(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
