package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carewise/carehome-directory/internal/domain/entities"
	apperrors "github.com/carewise/carehome-directory/pkg/errors"
)

func TestCareHomeStore_SeededCatalog(t *testing.T) {
	store, err := NewSeededCareHomeStore()
	require.NoError(t, err)

	homes, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, homes, 6)

	for i, careHome := range homes {
		assert.Equal(t, i+1, careHome.ID)
	}
	assert.Equal(t, "Sunrise Manor Senior Living", homes[0].Name)
	assert.Equal(t, "Bayshore Independent Living", homes[5].Name)
}

func TestCareHomeStore_GetByID(t *testing.T) {
	store, err := NewSeededCareHomeStore()
	require.NoError(t, err)

	careHome, err := store.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Golden Gate Gardens", careHome.Name)
}

func TestCareHomeStore_GetByIDNotFound(t *testing.T) {
	store, err := NewSeededCareHomeStore()
	require.NoError(t, err)

	_, err = store.GetByID(context.Background(), 42)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestCareHomeStore_CreateAssignsNextID(t *testing.T) {
	store, err := NewSeededCareHomeStore()
	require.NoError(t, err)

	careHome := &entities.CareHome{Name: "New Horizons"}
	require.NoError(t, store.Create(context.Background(), careHome))

	// Seed ids run 1..6, so the counter has advanced past them.
	assert.Equal(t, 7, careHome.ID)
}

func TestCareHomeStore_CreateRejectsDuplicateID(t *testing.T) {
	store := NewCareHomeStore()
	require.NoError(t, store.Create(context.Background(), &entities.CareHome{ID: 3}))

	err := store.Create(context.Background(), &entities.CareHome{ID: 3})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestCareHomeStore_ListPreservesInsertionOrder(t *testing.T) {
	store := NewCareHomeStore()
	for _, id := range []int{5, 2, 9} {
		require.NoError(t, store.Create(context.Background(), &entities.CareHome{ID: id}))
	}

	homes, err := store.List(context.Background())
	require.NoError(t, err)

	got := make([]int, len(homes))
	for i, careHome := range homes {
		got[i] = careHome.ID
	}
	assert.Equal(t, []int{5, 2, 9}, got)
}
