package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GameID    uint      `gorm:"index;not null" json:"game_id"`
	UserID    string    `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   string    `gorm:"size:1000" json:"content"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	CreatedAt time.Time `json:"created_at"`
}
