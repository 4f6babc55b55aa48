package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeedIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Game{}, &Category{}, &Review{}, &ShoppingCart{}, &CartItem{}, &Order{}, &GameOrder{}))

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var categories, games, admins int64
	require.NoError(t, db.Model(&Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&Game{}).Count(&games).Error)
	require.NoError(t, db.Model(&User{}).Where("role = ?", RoleAdmin).Count(&admins).Error)

	assert.Equal(t, int64(17), categories)
	assert.Equal(t, int64(14), games)
	assert.Equal(t, int64(1), admins)
}
