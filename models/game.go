package models

import (
	"time"

	"gorm.io/gorm"
)

type Game struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"size:100;not null" json:"title"`
	Price       float64        `gorm:"not null" json:"price"`
	Description string         `gorm:"size:500" json:"description"`
	ImageURL    string         `json:"image_url"`
	Categories  []Category     `gorm:"many2many:game_categories" json:"categories"`
	Reviews     []Review       `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"reviews"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
