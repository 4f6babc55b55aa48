package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed fills an empty database with the starting catalog and the admin
// account. Each block is skipped when rows already exist, so it is safe
// to run on every startup.
func Seed(db *gorm.DB) error {
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedGames(db); err != nil {
		return err
	}
	return seedAdmin(db)
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	names := []string{
		"Action", "RPG", "Adventure", "Shooter", "Strategy", "Simulation",
		"Sports", "Horror", "Indie", "Multiplayer", "MMO", "Sandbox",
		"Puzzle", "Survival", "Open World", "Singleplayer", "Fighting",
	}
	categories := make([]Category, 0, len(names))
	for _, n := range names {
		categories = append(categories, Category{Name: n})
	}
	return db.Create(&categories).Error
}

func seedGames(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Game{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	games := []Game{
		{Title: "The Witcher 3: Wild Hunt", Price: 49.99, Description: "A story-driven open-world RPG."},
		{Title: "Red Dead Redemption 2", Price: 59.99, Description: "An epic tale of life in America's unforgiving heartland."},
		{Title: "Cyberpunk 2077", Price: 59.99, Description: "A futuristic open-world RPG set in a dystopian world."},
		{Title: "Minecraft", Price: 26.99, Description: "A sandbox game where you can build and explore a procedurally generated world."},
		{Title: "Call of Duty: Modern Warfare", Price: 59.99, Description: "A first-person shooter with an intense multiplayer mode."},
		{Title: "Battlefield 2042", Price: 69.99, Description: "A large-scale warfare FPS set in a near-future world."},
		{Title: "Assassin's Creed Odyssey", Price: 39.99, Description: "An open-world RPG set in ancient Greece with historical narratives."},
		{Title: "The Elder Scrolls V: Skyrim", Price: 39.99, Description: "An open-world RPG where you fight dragons and explore a vast world."},
		{Title: "Grand Theft Auto V", Price: 29.99, Description: "A third-person open-world action-adventure game."},
		{Title: "Dark Souls III", Price: 59.99, Description: "A punishingly difficult action RPG with deep lore and world-building."},
		{Title: "The Legend of Zelda: Breath of the Wild", Price: 59.99, Description: "An open-world action-adventure game in the Zelda universe."},
		{Title: "DOOM Eternal", Price: 59.99, Description: "A fast-paced, action-packed first-person shooter."},
		{Title: "FIFA 23", Price: 69.99, Description: "A football simulation video game featuring realistic graphics and gameplay."},
		{Title: "NBA 2K23", Price: 59.99, Description: "A basketball simulation video game with realistic gameplay."},
	}
	return db.Create(&games).Error
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Where("role = ?", RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := User{
		ID:           uuid.NewString(),
		Email:        "admin@admin.com",
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         RoleAdmin,
		CreatedAt:    time.Now(),
	}
	return db.Create(&admin).Error
}
