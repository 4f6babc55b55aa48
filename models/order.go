package models

import "time"

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     string      `gorm:"index;not null" json:"user_id"`
	User       User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TotalPrice float64     `json:"total_price"`
	Items      []GameOrder `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	OrderDate  time.Time   `json:"order_date"`
}

// GameOrder is an order line item: which game, and how many copies.
type GameOrder struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	OrderID  uint `gorm:"index" json:"order_id"`
	GameID   uint `gorm:"not null" json:"game_id"`
	Game     Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
	Quantity int  `json:"quantity"`
}
