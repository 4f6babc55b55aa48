package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PKoev99/VenomGames/models"
)

func TestCategoryCRUD(t *testing.T) {
	db := testDB(t)
	svc := NewCategoryService(db, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, CategoryInput{Name: "Horror"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Horror", got.Name)

	updated, err := svc.Update(ctx, created.ID, CategoryInput{Name: "Survival Horror"})
	require.NoError(t, err)
	assert.Equal(t, "Survival Horror", updated.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.True(t, IsNotFound(err))
}

func TestCategoryNotFoundSemantics(t *testing.T) {
	db := testDB(t)
	svc := NewCategoryService(db, testLogger())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 404)
	assert.True(t, IsNotFound(err))

	_, err = svc.Update(ctx, 404, CategoryInput{Name: "Ghost"})
	assert.True(t, IsNotFound(err))

	assert.True(t, IsNotFound(svc.Delete(ctx, 404)))
}

func TestCategoryGetAllWithGames(t *testing.T) {
	db := testDB(t)
	svc := NewCategoryService(db, testLogger())
	ctx := context.Background()

	rpg := models.Category{Name: "RPG"}
	require.NoError(t, db.Create(&rpg).Error)
	game := models.Game{Title: "Skyrim", Price: 39.99, Categories: []models.Category{rpg}}
	require.NoError(t, db.Create(&game).Error)

	categories, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Games, 1)
	assert.Equal(t, "Skyrim", categories[0].Games[0].Title)
}

func TestCategoryDeleteClearsGameLinks(t *testing.T) {
	db := testDB(t)
	svc := NewCategoryService(db, testLogger())
	ctx := context.Background()

	rpg := models.Category{Name: "RPG"}
	require.NoError(t, db.Create(&rpg).Error)
	game := models.Game{Title: "Skyrim", Price: 39.99, Categories: []models.Category{rpg}}
	require.NoError(t, db.Create(&game).Error)

	require.NoError(t, svc.Delete(ctx, rpg.ID))

	var remaining models.Game
	require.NoError(t, db.Preload("Categories").First(&remaining, game.ID).Error)
	assert.Empty(t, remaining.Categories)
}
