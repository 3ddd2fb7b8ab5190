package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/berkekarsli/taskbox-backend/internal/config"
	"github.com/berkekarsli/taskbox-backend/internal/dto"
	"github.com/berkekarsli/taskbox-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const minPasswordLen = 6

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register validates the request, hashes the password and persists the
// new user. The very first persisted user gets the admin role; the
// count check and the insert share one transaction, and the unique
// index on email settles any registration race on the same address.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, validationError("All fields are required")
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if utf8.RuneCountInString(name) < 2 {
		return nil, validationError("Name must be at least 2 characters")
	}
	if !emailPattern.MatchString(email) {
		return nil, validationError("Invalid email format")
	}
	if len(req.Password) < minPasswordLen {
		return nil, validationError("Password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: string(hash),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", email).First(&existing).Error; err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing email: %w", err)
		}

		var count int64
		if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		// First user becomes admin (one-time bootstrap)
		user.Role = models.RoleUser
		if count == 0 {
			user.Role = models.RoleAdmin
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, mapRegisterError(err)
	}

	return &user, nil
}

// mapRegisterError folds both uniqueness outcomes into ErrEmailTaken:
// the pre-check inside the transaction, and the unique-index violation
// a concurrent registration for the same address produces.
func mapRegisterError(err error) error {
	if errors.Is(err, ErrEmailTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return fmt.Errorf("failed to create user: %w", err)
}

// Login verifies credentials and issues a signed access token. A
// missing user and a wrong password both return ErrInvalidCredentials
// so the caller cannot tell which field was wrong.
func (s *AuthService) Login(req *dto.LoginRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", validationError("Email and password required")
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(&user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return &user, token, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"id":    user.ID.String(),
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
