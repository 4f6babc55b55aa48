package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PKoev99/VenomGames/models"
)

// OrderService handles reads and management of completed orders. The only
// writer in the normal flow is CartService.CompleteOrder; the mutations
// here back the admin screens.
type OrderService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewOrderService(db *gorm.DB, log *zap.Logger) *OrderService {
	return &OrderService{db: db, log: log}
}

type OrderItemOutput struct {
	GameID   uint    `json:"game_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderOutput struct {
	ID         uint              `json:"id"`
	UserID     string            `json:"user_id"`
	TotalPrice float64           `json:"total_price"`
	OrderDate  time.Time         `json:"order_date"`
	Items      []OrderItemOutput `json:"items"`
}

// OrderQuery holds optional filters, combined with AND.
type OrderQuery struct {
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
}

type OrderInput struct {
	UserID     string    `json:"user_id" binding:"required"`
	TotalPrice float64   `json:"total_price"`
	OrderDate  time.Time `json:"order_date"`
}

// Search returns orders matching every supplied filter, newest first.
func (s *OrderService) Search(ctx context.Context, q OrderQuery) ([]OrderOutput, error) {
	query := s.db.WithContext(ctx).Model(&models.Order{}).Preload("Items.Game")

	if q.UserID != "" {
		query = query.Where("user_id = ?", q.UserID)
	}
	if q.StartDate != nil && q.EndDate != nil {
		query = query.Where("order_date >= ? AND order_date <= ?", *q.StartDate, *q.EndDate)
	}

	var orders []models.Order
	if err := query.Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orderOutputs(orders), nil
}

// GetAll returns every order, newest first.
func (s *OrderService) GetAll(ctx context.Context) ([]OrderOutput, error) {
	return s.Search(ctx, OrderQuery{})
}

// GetByUser returns one user's orders, newest first.
func (s *OrderService) GetByUser(ctx context.Context, userID string) ([]OrderOutput, error) {
	return s.Search(ctx, OrderQuery{UserID: userID})
}

// GetByID returns one order with its line items, or a NotFoundError.
func (s *OrderService) GetByID(ctx context.Context, id uint) (*OrderOutput, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items.Game").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "order", Key: id}
	}
	if err != nil {
		return nil, err
	}
	out := orderOutput(order)
	return &out, nil
}

// Create stores a bare order record (no line items).
func (s *OrderService) Create(ctx context.Context, in OrderInput) (*OrderOutput, error) {
	order := models.Order{
		UserID:     in.UserID,
		TotalPrice: in.TotalPrice,
		OrderDate:  in.OrderDate,
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}
	out := orderOutput(order)
	return &out, nil
}

// Update overwrites an order's total and date, failing with NotFoundError
// for an unknown id.
func (s *OrderService) Update(ctx context.Context, id uint, in OrderInput) (*OrderOutput, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order", Key: id}
		}
		return nil, err
	}
	order.TotalPrice = in.TotalPrice
	if !in.OrderDate.IsZero() {
		order.OrderDate = in.OrderDate
	}
	if err := s.db.WithContext(ctx).Save(&order).Error; err != nil {
		return nil, err
	}
	out := orderOutput(order)
	return &out, nil
}

// Delete removes an order and its line items, failing with NotFoundError
// for an unknown id.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "order", Key: id}
			}
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.GameOrder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

func orderOutput(o models.Order) OrderOutput {
	out := OrderOutput{
		ID:         o.ID,
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
		OrderDate:  o.OrderDate,
		Items:      make([]OrderItemOutput, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		out.Items = append(out.Items, OrderItemOutput{
			GameID:   item.GameID,
			Title:    item.Game.Title,
			Price:    item.Game.Price,
			Quantity: item.Quantity,
		})
	}
	return out
}

func orderOutputs(orders []models.Order) []OrderOutput {
	out := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderOutput(o))
	}
	return out
}
