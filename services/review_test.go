package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PKoev99/VenomGames/models"
)

func TestReviewCreateAndGet(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, testLogger())
	ctx := context.Background()

	seedUser(t, db, "u1", "u1@example.com")
	game := seedGame(t, db, "The Witcher 3", 49.99)

	created, err := svc.Create(ctx, "u1", ReviewInput{
		GameID:  game.ID,
		Content: "A masterpiece.",
		Rating:  5,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A masterpiece.", got.Content)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, "u1", got.UserID)
}

func TestReviewDuplicatePerUserAndGameAllowed(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, testLogger())
	ctx := context.Background()

	seedUser(t, db, "u1", "u1@example.com")
	game := seedGame(t, db, "Minecraft", 26.99)

	_, err := svc.Create(ctx, "u1", ReviewInput{GameID: game.ID, Rating: 4})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", ReviewInput{GameID: game.ID, Rating: 2})
	require.NoError(t, err)

	reviews, err := svc.GetByGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestReviewSearchFilters(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, testLogger())
	ctx := context.Background()

	seedUser(t, db, "u1", "u1@example.com")
	seedUser(t, db, "u2", "u2@example.com")
	g1 := seedGame(t, db, "DOOM Eternal", 59.99)
	g2 := seedGame(t, db, "FIFA 23", 69.99)

	old := time.Now().AddDate(0, -2, 0)
	require.NoError(t, db.Create(&models.Review{GameID: g1.ID, UserID: "u1", Rating: 5, CreatedAt: old}).Error)
	require.NoError(t, db.Create(&models.Review{GameID: g1.ID, UserID: "u2", Rating: 2, CreatedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&models.Review{GameID: g2.ID, UserID: "u1", Rating: 4, CreatedAt: time.Now()}).Error)

	reviews, err := svc.Search(ctx, ReviewQuery{GameID: g1.ID})
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	reviews, err = svc.Search(ctx, ReviewQuery{UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	reviews, err = svc.Search(ctx, ReviewQuery{GameID: g1.ID, Rating: 5})
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "u1", reviews[0].UserID)

	start := time.Now().AddDate(0, -1, 0)
	end := time.Now().Add(time.Hour)
	reviews, err = svc.Search(ctx, ReviewQuery{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Len(t, reviews, 2, "the old review falls outside the window")
}

func TestReviewUpdateAndDelete(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, testLogger())
	ctx := context.Background()

	seedUser(t, db, "u1", "u1@example.com")
	game := seedGame(t, db, "Dark Souls III", 59.99)

	created, err := svc.Create(ctx, "u1", ReviewInput{GameID: game.ID, Content: "Hard.", Rating: 3})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, ReviewInput{GameID: game.ID, Content: "Hard but fair.", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "Hard but fair.", updated.Content)
	assert.Equal(t, 5, updated.Rating)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.True(t, IsNotFound(svc.Delete(ctx, created.ID)))

	_, err = svc.Update(ctx, created.ID, ReviewInput{GameID: game.ID, Rating: 1})
	assert.True(t, IsNotFound(err))
}
