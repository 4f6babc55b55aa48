package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PKoev99/VenomGames/models"
)

func TestGameCreateWithCategories(t *testing.T) {
	db := testDB(t)
	svc := NewGameService(db, testLogger())
	ctx := context.Background()

	rpg := models.Category{Name: "RPG"}
	action := models.Category{Name: "Action"}
	require.NoError(t, db.Create(&rpg).Error)
	require.NoError(t, db.Create(&action).Error)

	game, err := svc.Create(ctx, GameInput{
		Title:       "Elden Ring",
		Price:       59.99,
		Description: "An action RPG in an open world.",
		CategoryIDs: []uint{rpg.ID, action.ID},
	})
	require.NoError(t, err)
	assert.NotZero(t, game.ID)
	assert.Len(t, game.Categories, 2)

	got, err := svc.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Elden Ring", got.Title)
	assert.Equal(t, 59.99, got.Price)
	assert.Len(t, got.Categories, 2)
}

func TestGameGetByIDNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewGameService(db, testLogger())

	_, err := svc.GetByID(context.Background(), 404)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "game")
}

func TestGameSearchFilters(t *testing.T) {
	db := testDB(t)
	svc := NewGameService(db, testLogger())
	ctx := context.Background()

	rpg := models.Category{Name: "RPG"}
	require.NoError(t, db.Create(&rpg).Error)

	witcher := models.Game{Title: "The Witcher 3", Price: 49.99, Description: "Open-world RPG", Categories: []models.Category{rpg}}
	doom := models.Game{Title: "DOOM Eternal", Price: 59.99, Description: "Fast shooter"}
	mc := models.Game{Title: "Minecraft", Price: 26.99, Description: "Sandbox building"}
	require.NoError(t, db.Create(&witcher).Error)
	require.NoError(t, db.Create(&doom).Error)
	require.NoError(t, db.Create(&mc).Error)

	// Title/description contains, case-insensitive.
	results, err := svc.Search(ctx, GameQuery{Title: "witcher"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The Witcher 3", results[0].Title)

	results, err = svc.Search(ctx, GameQuery{Title: "sandbox"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Minecraft", results[0].Title)

	// Price range.
	lo, hi := 30.00, 60.00
	results, err = svc.Search(ctx, GameQuery{MinPrice: &lo, MaxPrice: &hi})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Category membership.
	results, err = svc.Search(ctx, GameQuery{CategoryID: rpg.ID})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The Witcher 3", results[0].Title)

	// Filters combine with AND.
	results, err = svc.Search(ctx, GameQuery{Title: "witcher", MinPrice: &hi})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGameUpdate(t *testing.T) {
	db := testDB(t)
	svc := NewGameService(db, testLogger())
	ctx := context.Background()

	game := seedGame(t, db, "Cyberpunk 2077", 59.99)

	updated, err := svc.Update(ctx, game.ID, GameInput{Title: "Cyberpunk 2077", Price: 29.99})
	require.NoError(t, err)
	assert.Equal(t, 29.99, updated.Price)

	_, err = svc.Update(ctx, 404, GameInput{Title: "Ghost", Price: 1})
	assert.True(t, IsNotFound(err))
}

func TestGameDelete(t *testing.T) {
	db := testDB(t)
	svc := NewGameService(db, testLogger())
	ctx := context.Background()

	game := seedGame(t, db, "FIFA 23", 69.99)

	require.NoError(t, svc.Delete(ctx, game.ID))

	_, err := svc.GetByID(ctx, game.ID)
	assert.True(t, IsNotFound(err))

	assert.True(t, IsNotFound(svc.Delete(ctx, game.ID)))
}

func TestGameAverageRating(t *testing.T) {
	db := testDB(t)
	svc := NewGameService(db, testLogger())
	ctx := context.Background()

	seedUser(t, db, "u1", "u1@example.com")
	game := seedGame(t, db, "Dark Souls III", 59.99)
	for _, rating := range []int{5, 4, 3} {
		require.NoError(t, db.Create(&models.Review{
			GameID: game.ID, UserID: "u1", Rating: rating, CreatedAt: time.Now(),
		}).Error)
	}

	got, err := svc.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.AverageRating, 1e-9)
}

func TestGameFeaturedOrderingAndCutoff(t *testing.T) {
	db := testDB(t)
	svc := NewGameService(db, testLogger())
	ctx := context.Background()

	seedUser(t, db, "u1", "u1@example.com")

	good := seedGame(t, db, "Good Game", 10)
	better := seedGame(t, db, "Better Game", 10)
	bad := seedGame(t, db, "Bad Game", 10)
	unrated := seedGame(t, db, "Unrated Game", 10)

	addReview := func(gameID uint, rating int) {
		require.NoError(t, db.Create(&models.Review{
			GameID: gameID, UserID: "u1", Rating: rating, CreatedAt: time.Now(),
		}).Error)
	}
	addReview(good.ID, 3)
	addReview(good.ID, 4)
	addReview(better.ID, 5)
	addReview(bad.ID, 1)
	addReview(bad.ID, 2)

	featured, err := svc.GetFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 2, "games without a rating of 3+ are excluded")
	assert.Equal(t, better.ID, featured[0].ID, "best average rating first")
	assert.Equal(t, good.ID, featured[1].ID)

	for _, g := range featured {
		assert.NotEqual(t, bad.ID, g.ID)
		assert.NotEqual(t, unrated.ID, g.ID)
	}
}
