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

type AdminService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAdminService(db *gorm.DB, cfg *config.Config) *AdminService {
	return &AdminService{db: db, cfg: cfg}
}

func (s *AdminService) Login(username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *AdminService) ResetUserPassword(userID uint, newPassword string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = hash
	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	log.Printf("Password reset for user %d", userID)
	return nil
}

// DeleteUser removes the account permanently. Meals and training-data logs
// keyed by the unique code survive on purpose.
func (s *AdminService) DeleteUser(userID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	log.Printf("User %d (%s) deleted", userID, user.UniqueCode)
	return nil
}

// EnsureDefaultAdmin creates the bootstrap admin account on first start.
func (s *AdminService) EnsureDefaultAdmin() error {
	var count int64
	if err := s.db.Model(&models.Admin{}).Where("username = ?", s.cfg.AdminUsername).Count(&count).Error; err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.Admin{Username: s.cfg.AdminUsername, Password: hash}
	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	log.Printf("Default admin account created: %s", admin.Username)
	return nil
}
