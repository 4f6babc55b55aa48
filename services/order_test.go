package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PKoev99/VenomGames/models"
)

func TestOrderGetByIDWithItems(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db, testLogger())
	ctx := context.Background()

	game := seedGame(t, db, "Grand Theft Auto V", 29.99)
	order := models.Order{
		UserID:     "u1",
		TotalPrice: 59.98,
		OrderDate:  time.Now(),
		Items:      []models.GameOrder{{GameID: game.ID, Quantity: 2}},
	}
	require.NoError(t, db.Create(&order).Error)

	got, err := svc.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 59.98, got.TotalPrice)
	require.Len(t, got.Items, 1)
	assert.Equal(t, game.ID, got.Items[0].GameID)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "Grand Theft Auto V", got.Items[0].Title)
}

func TestOrderGetByIDNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db, testLogger())

	_, err := svc.GetByID(context.Background(), 404)
	assert.True(t, IsNotFound(err))
}

func TestOrderSearchFilters(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db, testLogger())
	ctx := context.Background()

	old := time.Now().AddDate(0, -3, 0)
	require.NoError(t, db.Create(&models.Order{UserID: "u1", TotalPrice: 10, OrderDate: old}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: "u1", TotalPrice: 20, OrderDate: time.Now()}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: "u2", TotalPrice: 30, OrderDate: time.Now()}).Error)

	orders, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	orders, err = svc.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	start := time.Now().AddDate(0, -1, 0)
	end := time.Now().Add(time.Hour)
	orders, err = svc.Search(ctx, OrderQuery{UserID: "u1", StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 20.00, orders[0].TotalPrice)
}

func TestOrderCreateUpdateDelete(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, OrderInput{UserID: "u1", TotalPrice: 15})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.OrderDate.IsZero())

	updated, err := svc.Update(ctx, created.ID, OrderInput{UserID: "u1", TotalPrice: 25})
	require.NoError(t, err)
	assert.Equal(t, 25.00, updated.TotalPrice)

	_, err = svc.Update(ctx, 404, OrderInput{UserID: "u1"})
	assert.True(t, IsNotFound(err))

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.True(t, IsNotFound(svc.Delete(ctx, created.ID)))
}

func TestOrderDeleteRemovesLineItems(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db, testLogger())
	ctx := context.Background()

	game := seedGame(t, db, "Minecraft", 26.99)
	order := models.Order{
		UserID:     "u1",
		TotalPrice: 26.99,
		OrderDate:  time.Now(),
		Items:      []models.GameOrder{{GameID: game.ID, Quantity: 1}},
	}
	require.NoError(t, db.Create(&order).Error)

	require.NoError(t, svc.Delete(ctx, order.ID))

	var count int64
	require.NoError(t, db.Model(&models.GameOrder{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Zero(t, count)
}
