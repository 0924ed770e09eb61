package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/config"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/models"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/utils"

	"gorm.io/gorm"
)

// maxCodeAttempts caps the collision-retry loop during unique-code issuance.
// The cap only guards against an infinite loop under data corruption;
// genuine collisions at 62^10 combinations are effectively impossible.
const maxCodeAttempts = 10

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer *utils.Mailer // optional; nil disables welcome mail

	generateCode func() string
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mailer *utils.Mailer) *AuthService {
	return &AuthService{
		db:           db,
		cfg:          cfg,
		mailer:       mailer,
		generateCode: utils.GenerateUniqueCode,
	}
}

type SignUpRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	DailyCalorieGoal *int   `json:"daily_calorie_goal" binding:"omitempty,min=1"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserID           uint   `json:"user_id"`
	UniqueCode       string `json:"unique_code"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	DailyCalorieGoal int    `json:"daily_calorie_goal"`
	Token            string `json:"token,omitempty"`
}

func (s *AuthService) SignUp(req SignUpRequest) (*AuthResponse, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	code, err := s.issueUniqueCode()
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	goal := req.DailyCalorieGoal
	if goal == nil {
		g := s.cfg.DefaultCalorieGoal
		goal = &g
	}

	user := models.User{
		UniqueCode:       code,
		Name:             req.Name,
		Email:            req.Email,
		Password:         hash,
		DailyCalorieGoal: goal,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Welcome mail is best-effort; signup never fails on it.
	if s.mailer != nil {
		if err := s.mailer.SendWelcomeEmail(user.Email, user.Name, user.UniqueCode); err != nil {
			log.Printf("Welcome email to %s failed: %v", user.Email, err)
		}
	}

	return &AuthResponse{
		UserID:           user.ID,
		UniqueCode:       user.UniqueCode,
		Name:             user.Name,
		Email:            user.Email,
		DailyCalorieGoal: *user.DailyCalorieGoal,
	}, nil
}

func (s *AuthService) Login(req LoginRequest) (*AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken([]byte(s.cfg.JWTSecret), user.UniqueCode)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	goal := s.cfg.DefaultCalorieGoal
	if user.DailyCalorieGoal != nil {
		goal = *user.DailyCalorieGoal
	}

	return &AuthResponse{
		UserID:           user.ID,
		UniqueCode:       user.UniqueCode,
		Name:             user.Name,
		Email:            user.Email,
		DailyCalorieGoal: goal,
		Token:            token,
	}, nil
}

func (s *AuthService) GetUserByUniqueCode(code string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("unique_code = ?", code).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by code: %w", err)
	}
	return &user, nil
}

func (s *AuthService) UserExistsByCode(code string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("unique_code = ?", code).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check unique code: %w", err)
	}
	return count > 0, nil
}

func (s *AuthService) UpdateDailyCalorieGoal(code string, goal int) error {
	user, err := s.GetUserByUniqueCode(code)
	if err != nil {
		return err
	}
	user.DailyCalorieGoal = &goal
	return s.db.Save(user).Error
}

// issueUniqueCode generates codes until one is unused, bounded by
// maxCodeAttempts.
func (s *AuthService) issueUniqueCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := s.generateCode()
		exists, err := s.UserExistsByCode(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeCapacity
}
