package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PKoev99/VenomGames/models"
)

// GameService handles catalog reads, filtered search, and game management.
type GameService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewGameService(db *gorm.DB, log *zap.Logger) *GameService {
	return &GameService{db: db, log: log}
}

type GameOutput struct {
	ID            uint              `json:"id"`
	Title         string            `json:"title"`
	Price         float64           `json:"price"`
	Description   string            `json:"description"`
	ImageURL      string            `json:"image_url"`
	AverageRating float64           `json:"average_rating"`
	Categories    []models.Category `json:"categories"`
	Reviews       []ReviewOutput    `json:"reviews"`
}

// GameQuery holds optional search filters, combined with AND.
type GameQuery struct {
	Title      string
	CategoryID uint
	MinPrice   *float64
	MaxPrice   *float64
}

type GameInput struct {
	Title       string  `json:"title" binding:"required,max=100"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=500"`
	ImageURL    string  `json:"image_url"`
	CategoryIDs []uint  `json:"category_ids"`
}

// GetAll returns the whole catalog with categories, reviews and the
// average rating per game.
func (s *GameService) GetAll(ctx context.Context) ([]GameOutput, error) {
	var games []models.Game
	if err := s.db.WithContext(ctx).
		Preload("Categories").
		Preload("Reviews").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return gameOutputs(games), nil
}

// Search returns games matching every supplied filter.
func (s *GameService) Search(ctx context.Context, q GameQuery) ([]GameOutput, error) {
	query := s.db.WithContext(ctx).Model(&models.Game{}).
		Preload("Categories").
		Preload("Reviews")

	if q.Title != "" {
		pattern := "%" + strings.ToLower(q.Title) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if q.CategoryID != 0 {
		query = query.
			Joins("JOIN game_categories gc ON gc.game_id = games.id").
			Where("gc.category_id = ?", q.CategoryID)
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}

	var games []models.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, err
	}
	return gameOutputs(games), nil
}

// GetByID returns one game or a NotFoundError.
func (s *GameService) GetByID(ctx context.Context, id uint) (*GameOutput, error) {
	var game models.Game
	err := s.db.WithContext(ctx).
		Preload("Categories").
		Preload("Reviews").
		First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "game", Key: id}
	}
	if err != nil {
		return nil, err
	}
	out := gameOutput(game)
	return &out, nil
}

// GetFeatured returns up to five games that have at least one rating of 3
// or higher, best average rating first.
func (s *GameService) GetFeatured(ctx context.Context) ([]GameOutput, error) {
	var games []models.Game
	if err := s.db.WithContext(ctx).
		Joins("JOIN reviews ON reviews.game_id = games.id").
		Group("games.id").
		Having("MAX(reviews.rating) >= ?", 3).
		Order("AVG(reviews.rating) DESC").
		Limit(5).
		Preload("Categories").
		Preload("Reviews").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return gameOutputs(games), nil
}

// GetByCategory returns all games belonging to a category.
func (s *GameService) GetByCategory(ctx context.Context, categoryID uint) ([]GameOutput, error) {
	return s.Search(ctx, GameQuery{CategoryID: categoryID})
}

// Create adds a game and links it to the selected categories.
func (s *GameService) Create(ctx context.Context, in GameInput) (*GameOutput, error) {
	game := models.Game{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(in.CategoryIDs) > 0 {
			if err := tx.Find(&game.Categories, in.CategoryIDs).Error; err != nil {
				return err
			}
		}
		return tx.Create(&game).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("game created", zap.Uint("game_id", game.ID), zap.String("title", game.Title))
	out := gameOutput(game)
	return &out, nil
}

// Update overwrites a game's fields and, when category ids are supplied,
// its category links. Fails with NotFoundError for an unknown id.
func (s *GameService) Update(ctx context.Context, id uint, in GameInput) (*GameOutput, error) {
	var game models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&game, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "game", Key: id}
			}
			return err
		}
		game.Title = in.Title
		game.Price = in.Price
		game.Description = in.Description
		game.ImageURL = in.ImageURL
		if err := tx.Save(&game).Error; err != nil {
			return err
		}
		if in.CategoryIDs != nil {
			var categories []models.Category
			if err := tx.Find(&categories, in.CategoryIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(&game).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := gameOutput(game)
	return &out, nil
}

// Delete removes a game, failing with NotFoundError for an unknown id.
func (s *GameService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "game", Key: id}
			}
			return err
		}
		if err := tx.Model(&game).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&game).Error
	})
}

func gameOutput(g models.Game) GameOutput {
	out := GameOutput{
		ID:          g.ID,
		Title:       g.Title,
		Price:       g.Price,
		Description: g.Description,
		ImageURL:    g.ImageURL,
		Categories:  g.Categories,
		Reviews:     reviewOutputs(g.Reviews),
	}
	if len(g.Reviews) > 0 {
		sum := 0
		for _, r := range g.Reviews {
			sum += r.Rating
		}
		out.AverageRating = float64(sum) / float64(len(g.Reviews))
	}
	return out
}

func gameOutputs(games []models.Game) []GameOutput {
	out := make([]GameOutput, 0, len(games))
	for _, g := range games {
		out = append(out, gameOutput(g))
	}
	return out
}
