package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PKoev99/VenomGames/models"
)

// ReviewService handles reviews written by users for games.
type ReviewService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewReviewService(db *gorm.DB, log *zap.Logger) *ReviewService {
	return &ReviewService{db: db, log: log}
}

type ReviewOutput struct {
	ID        uint      `json:"id"`
	GameID    uint      `json:"game_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewQuery holds optional filters, combined with AND.
type ReviewQuery struct {
	GameID    uint
	UserID    string
	Rating    int
	StartDate *time.Time
	EndDate   *time.Time
}

type ReviewInput struct {
	GameID  uint   `json:"game_id" binding:"required"`
	Content string `json:"content" binding:"max=1000"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// Search returns reviews matching every supplied filter.
func (s *ReviewService) Search(ctx context.Context, q ReviewQuery) ([]ReviewOutput, error) {
	query := s.db.WithContext(ctx).Model(&models.Review{}).Preload("User")

	if q.GameID != 0 {
		query = query.Where("game_id = ?", q.GameID)
	}
	if q.UserID != "" {
		query = query.Where("user_id = ?", q.UserID)
	}
	if q.Rating != 0 {
		query = query.Where("rating = ?", q.Rating)
	}
	if q.StartDate != nil && q.EndDate != nil {
		query = query.Where("created_at >= ? AND created_at <= ?", *q.StartDate, *q.EndDate)
	}

	var reviews []models.Review
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviewOutputs(reviews), nil
}

// GetByGame returns all reviews for one game, newest first.
func (s *ReviewService) GetByGame(ctx context.Context, gameID uint) ([]ReviewOutput, error) {
	return s.Search(ctx, ReviewQuery{GameID: gameID})
}

// GetByID returns one review or a NotFoundError.
func (s *ReviewService) GetByID(ctx context.Context, id uint) (*ReviewOutput, error) {
	var review models.Review
	err := s.db.WithContext(ctx).Preload("User").First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "review", Key: id}
	}
	if err != nil {
		return nil, err
	}
	out := reviewOutput(review)
	return &out, nil
}

// Create stores a new review by userID for the given game. Nothing stops
// a user from reviewing the same game twice.
func (s *ReviewService) Create(ctx context.Context, userID string, in ReviewInput) (*ReviewOutput, error) {
	review := models.Review{
		GameID:    in.GameID,
		UserID:    userID,
		Content:   in.Content,
		Rating:    in.Rating,
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, err
	}
	s.log.Info("review created",
		zap.Uint("review_id", review.ID),
		zap.Uint("game_id", review.GameID),
		zap.String("user_id", userID))
	out := reviewOutput(review)
	return &out, nil
}

// Update overwrites a review's content and rating, failing with
// NotFoundError for an unknown id.
func (s *ReviewService) Update(ctx context.Context, id uint, in ReviewInput) (*ReviewOutput, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "review", Key: id}
		}
		return nil, err
	}
	review.Content = in.Content
	review.Rating = in.Rating
	if err := s.db.WithContext(ctx).Save(&review).Error; err != nil {
		return nil, err
	}
	out := reviewOutput(review)
	return &out, nil
}

// Delete removes a review, failing with NotFoundError for an unknown id.
func (s *ReviewService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "review", Key: id}
	}
	return nil
}

func reviewOutput(r models.Review) ReviewOutput {
	return ReviewOutput{
		ID:        r.ID,
		GameID:    r.GameID,
		UserID:    r.UserID,
		UserName:  r.User.Name,
		Content:   r.Content,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
	}
}

func reviewOutputs(reviews []models.Review) []ReviewOutput {
	out := make([]ReviewOutput, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, reviewOutput(r))
	}
	return out
}
