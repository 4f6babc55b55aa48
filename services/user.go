package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PKoev99/VenomGames/models"
)

// UserService is a thin identity wrapper: registration, login with JWT
// issuance, lookups and role assignment.
type UserService struct {
	db        *gorm.DB
	log       *zap.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUserService(db *gorm.DB, log *zap.Logger, jwtSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{db: db, log: log, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserOutput struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Register creates a new user with a bcrypt-hashed password. A taken
// email fails with ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*UserOutput, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("user_id", user.ID), zap.String("email", user.Email))
	out := userOutput(user)
	return &out, nil
}

// Login verifies the password and issues a signed JWT carrying the user
// id and role. Wrong email and wrong password fail identically with
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, in LoginInput) (string, *UserOutput, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", in.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	out := userOutput(user)
	return signed, &out, nil
}

// GetByID returns one user or a NotFoundError.
func (s *UserService) GetByID(ctx context.Context, id string) (*UserOutput, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "user", Key: id}
	}
	if err != nil {
		return nil, err
	}
	out := userOutput(user)
	return &out, nil
}

// GetAll returns every user, newest first.
func (s *UserService) GetAll(ctx context.Context) ([]UserOutput, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]UserOutput, 0, len(users))
	for _, u := range users {
		out = append(out, userOutput(u))
	}
	return out, nil
}

// UpdateProfile changes a user's display name.
func (s *UserService) UpdateProfile(ctx context.Context, id, name string) (*UserOutput, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "user", Key: id}
	}
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	out := userOutput(user)
	return &out, nil
}

// AssignRole changes a user's role, failing with NotFoundError for an
// unknown id.
func (s *UserService) AssignRole(ctx context.Context, id, role string) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "user", Key: id}
	}
	return nil
}

func userOutput(u models.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
