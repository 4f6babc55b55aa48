package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PKoev99/VenomGames/models"
)

// CategoryService handles category management and lookups.
type CategoryService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCategoryService(db *gorm.DB, log *zap.Logger) *CategoryService {
	return &CategoryService{db: db, log: log}
}

type CategoryInput struct {
	Name string `json:"name" binding:"required,max=100"`
}

// GetAll returns every category with its games.
func (s *CategoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Preload("Games").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns one category with its games, or a NotFoundError.
func (s *CategoryService) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).Preload("Games").First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "category", Key: id}
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Create adds a new category.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	category := models.Category{Name: in.Name}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	s.log.Info("category created", zap.Uint("category_id", category.ID), zap.String("name", category.Name))
	return &category, nil
}

// Update renames a category, failing with NotFoundError for an unknown id.
func (s *CategoryService) Update(ctx context.Context, id uint, in CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "category", Key: id}
		}
		return nil, err
	}
	category.Name = in.Name
	if err := s.db.WithContext(ctx).Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category after clearing its game links, failing with
// NotFoundError for an unknown id.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "category", Key: id}
			}
			return err
		}
		if err := tx.Model(&category).Association("Games").Clear(); err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
