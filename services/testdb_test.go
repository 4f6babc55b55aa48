package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PKoev99/VenomGames/models"
)

// testDB opens a fresh in-memory SQLite database, migrated, one per test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Category{},
		&models.Review{},
		&models.ShoppingCart{},
		&models.CartItem{},
		&models.Order{},
		&models.GameOrder{},
	))
	return db
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func seedGame(t *testing.T, db *gorm.DB, title string, price float64) models.Game {
	t.Helper()
	game := models.Game{Title: title, Price: price}
	require.NoError(t, db.Create(&game).Error)
	return game
}

func seedUser(t *testing.T, db *gorm.DB, id, email string) models.User {
	t.Helper()
	user := models.User{ID: id, Email: email, Name: id, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}
