package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-restaurant-reservation/apperr"
	"go-restaurant-reservation/database"
	"go-restaurant-reservation/models"
)

func newMenu(name, category string, price float64) *models.Menu {
	return &models.Menu{Name: &name, Category: &category, Price: &price}
}

func TestMenuCreateDefaultsAvailability(t *testing.T) {
	svc := NewMenuService(database.NewMemory())
	ctx := context.Background()

	menu := newMenu("Nasi Goreng", "main", 12.5)
	require.NoError(t, svc.Create(ctx, menu))
	require.NotNil(t, menu.Is_available)
	assert.True(t, *menu.Is_available)
	assert.False(t, menu.ID.IsZero())
}

func TestMenuListByCategory(t *testing.T) {
	svc := NewMenuService(database.NewMemory())
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newMenu("Nasi Goreng", "main", 12.5)))
	require.NoError(t, svc.Create(ctx, newMenu("Teh Manis", "drink", 3)))

	items, err := svc.ListByCategory(ctx, "drink")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Teh Manis", *items[0].Name)
}

func TestMenuListByCategoryEmpty(t *testing.T) {
	svc := NewMenuService(database.NewMemory())

	_, err := svc.ListByCategory(context.Background(), "xyz")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Contains(t, apperr.Message(err), "xyz")
}

func TestMenuListAll(t *testing.T) {
	svc := NewMenuService(database.NewMemory())
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newMenu("Nasi Goreng", "main", 12.5)))
	require.NoError(t, svc.Create(ctx, newMenu("Teh Manis", "drink", 3)))

	items, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
