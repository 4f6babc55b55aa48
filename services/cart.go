package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PKoev99/VenomGames/models"
)

// CartService owns the lifecycle of the single active shopping cart per
// user: lazy creation on first add, line-item mutation, running total
// bookkeeping, and conversion into an Order on checkout.
//
// Concurrent mutations of the same user's cart are not serialized beyond
// the database transaction itself; two simultaneous adds race on the
// read-modify-write of quantity and total, last write wins.
type CartService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCartService(db *gorm.DB, log *zap.Logger) *CartService {
	return &CartService{db: db, log: log}
}

type CartItemOutput struct {
	ItemID   uint    `json:"item_id"`
	GameID   uint    `json:"game_id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type CartSummary struct {
	ID          uint             `json:"id"`
	TotalPrice  float64          `json:"total_price"`
	IsCompleted bool             `json:"is_completed"`
	OrderDate   *time.Time       `json:"order_date,omitempty"`
	Items       []CartItemOutput `json:"items"`
}

// GetActiveCart returns the user's active cart with items and games
// loaded. A user without an active cart gets an empty summary, not an
// error.
func (s *CartService) GetActiveCart(ctx context.Context, userID string) (*CartSummary, error) {
	cart, err := s.activeCart(s.db.WithContext(ctx).Preload("Items.Game"), userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &CartSummary{Items: []CartItemOutput{}}, nil
	}
	return cartSummary(cart), nil
}

// AddItem puts quantity copies of a game into the user's active cart,
// creating the cart if needed. Repeat adds of the same game increment the
// existing line item; its unit price stays as captured on the first add,
// even if the catalog price changed since. A game missing from the
// catalog yields a zero-priced line item rather than a failure.
func (s *CartService) AddItem(ctx context.Context, userID string, gameID uint, quantity int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.activeCart(tx.Preload("Items"), userID)
		if err != nil {
			return err
		}
		if cart == nil {
			cart = &models.ShoppingCart{UserID: userID, CreatedAt: time.Now()}
			if err := tx.Create(cart).Error; err != nil {
				return err
			}
		}

		var item *models.CartItem
		for i := range cart.Items {
			if cart.Items[i].GameID == gameID {
				item = &cart.Items[i]
				break
			}
		}

		if item == nil {
			price := 0.0
			var game models.Game
			switch err := tx.First(&game, gameID).Error; {
			case err == nil:
				price = game.Price
			case errors.Is(err, gorm.ErrRecordNotFound):
				s.log.Warn("game missing at add time, capturing zero price",
					zap.Uint("game_id", gameID), zap.String("user_id", userID))
			default:
				return err
			}
			newItem := models.CartItem{
				CartID:   cart.ID,
				GameID:   gameID,
				Quantity: quantity,
				Price:    price,
				AddedAt:  time.Now(),
			}
			if err := tx.Create(&newItem).Error; err != nil {
				return err
			}
			cart.Items = append(cart.Items, newItem)
		} else {
			item.Quantity += quantity
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}

		return tx.Model(cart).Update("total_price", cartTotal(cart.Items)).Error
	})
}

// UpdateItemQuantity overwrites a cart item's quantity (replace, not
// additive) and recomputes the owning cart's total. The item must belong
// to an active cart owned by userID.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID string, itemID uint, quantity int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "cart item", Key: itemID}
			}
			return err
		}

		var cart models.ShoppingCart
		if err := tx.Preload("Items").First(&cart, item.CartID).Error; err != nil {
			return err
		}
		if cart.UserID != userID || cart.IsCompleted {
			return &NotFoundError{Entity: "cart item", Key: itemID}
		}

		item.Quantity = quantity
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			if cart.Items[i].ID == item.ID {
				cart.Items[i].Quantity = quantity
			}
		}
		return tx.Model(&cart).Update("total_price", cartTotal(cart.Items)).Error
	})
}

// RemoveItem deletes a line item, matched by the item's own id, from the
// user's active cart. It reports whether a removal happened; no active
// cart or no matching item is a quiet false, not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID string, itemID uint) (bool, error) {
	removed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.activeCart(tx.Preload("Items"), userID)
		if err != nil || cart == nil {
			return err
		}

		idx := -1
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}

		if err := tx.Delete(&models.CartItem{}, itemID).Error; err != nil {
			return err
		}
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
		removed = true
		return tx.Model(cart).Update("total_price", cartTotal(cart.Items)).Error
	})
	return removed, err
}

// CompleteOrder converts the user's active cart into a persisted Order,
// marks the cart completed, and returns a summary of what was ordered.
// Checking out with no active cart, or an empty one, fails with
// ErrEmptyCart and creates nothing.
func (s *CartService) CompleteOrder(ctx context.Context, userID string) (*CartSummary, error) {
	var summary *CartSummary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.activeCart(tx.Preload("Items.Game"), userID)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		now := time.Now()
		order := models.Order{
			UserID:     userID,
			TotalPrice: cart.TotalPrice,
			OrderDate:  now,
		}
		for _, item := range cart.Items {
			order.Items = append(order.Items, models.GameOrder{
				GameID:   item.GameID,
				Quantity: item.Quantity,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		cart.IsCompleted = true
		cart.OrderDate = &now
		if err := tx.Model(cart).Updates(map[string]any{
			"is_completed": true,
			"order_date":   now,
		}).Error; err != nil {
			return err
		}

		summary = cartSummary(cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("order completed",
		zap.String("user_id", userID),
		zap.Uint("cart_id", summary.ID),
		zap.Float64("total", summary.TotalPrice))
	return summary, nil
}

// GetCartItemCount returns the sum of quantities in the user's active
// cart, zero when there is none. Used for the persistent cart badge.
func (s *CartService) GetCartItemCount(ctx context.Context, userID string) (int, error) {
	cart, err := s.activeCart(s.db.WithContext(ctx).Preload("Items"), userID)
	if err != nil || cart == nil {
		return 0, err
	}
	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count, nil
}

// activeCart fetches the user's single not-completed cart, nil when absent.
func (s *CartService) activeCart(tx *gorm.DB, userID string) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := tx.Where("user_id = ? AND is_completed = ?", userID, false).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func cartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func cartSummary(cart *models.ShoppingCart) *CartSummary {
	out := &CartSummary{
		ID:          cart.ID,
		TotalPrice:  cart.TotalPrice,
		IsCompleted: cart.IsCompleted,
		OrderDate:   cart.OrderDate,
		Items:       make([]CartItemOutput, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		out.Items = append(out.Items, CartItemOutput{
			ItemID:   item.ID,
			GameID:   item.GameID,
			Title:    item.Game.Title,
			ImageURL: item.Game.ImageURL,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return out
}
