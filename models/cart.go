package models

import "time"

// ShoppingCart is the single active cart per user. Uniqueness is enforced
// at query time (user_id + is_completed = false), not by the schema:
// completed carts stay behind as order history.
type ShoppingCart struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"index;not null" json:"user_id"`
	Items       []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice  float64    `json:"total_price"`
	IsCompleted bool       `gorm:"index" json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	OrderDate   *time.Time `json:"order_date,omitempty"`
}

type CartItem struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CartID   uint      `gorm:"index" json:"cart_id"`
	GameID   uint      `gorm:"not null" json:"game_id"`
	Game     Game      `gorm:"foreignKey:GameID" json:"game,omitempty"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"` // unit price captured when the item was first added
	AddedAt  time.Time `json:"added_at"`
}
