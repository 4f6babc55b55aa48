package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"unique;not null" json:"email"`
	Name         string         `json:"name"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         string         `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	Reviews      []Review       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Orders       []Order        `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Carts        []ShoppingCart `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
}
