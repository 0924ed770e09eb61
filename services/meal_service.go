package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/models"

	"gorm.io/gorm"
)

type MealService struct {
	db   *gorm.DB
	auth *AuthService
}

func NewMealService(db *gorm.DB, auth *AuthService) *MealService {
	return &MealService{db: db, auth: auth}
}

type MealRequest struct {
	UserUniqueCode string          `json:"user_unique_code" binding:"required"`
	MealDate       string          `json:"meal_date" binding:"required"`
	MealTime       string          `json:"meal_time" binding:"required"`
	MealType       models.MealType `json:"meal_type" binding:"required"`
	FoodCount      int             `json:"food_count" binding:"required,min=1,max=3"`

	Food1Name     *string `json:"food1_name"`
	Food1Calories *int    `json:"food1_calories"`
	Food2Name     *string `json:"food2_name"`
	Food2Calories *int    `json:"food2_calories"`
	Food3Name     *string `json:"food3_name"`
	Food3Calories *int    `json:"food3_calories"`
}

// Validate checks fields the binding tags cannot express and normalizes the
// time to HH:MM:SS. The slots themselves are trusted as supplied: the caller
// contract is that exactly FoodCount slots are populated, in order.
func (r *MealRequest) Validate() error {
	if _, err := time.Parse("2006-01-02", r.MealDate); err != nil {
		return fmt.Errorf("%w: meal_date must be YYYY-MM-DD", ErrValidation)
	}

	t, err := time.Parse("15:04:05", r.MealTime)
	if err != nil {
		t, err = time.Parse("15:04", r.MealTime)
		if err != nil {
			return fmt.Errorf("%w: meal_time must be HH:MM or HH:MM:SS", ErrValidation)
		}
	}
	r.MealTime = t.Format("15:04:05")

	if !r.MealType.Valid() {
		return fmt.Errorf("%w: unknown meal_type %q", ErrValidation, r.MealType)
	}
	if r.FoodCount < 1 || r.FoodCount > 3 {
		return fmt.Errorf("%w: food_count must be between 1 and 3", ErrValidation)
	}
	return nil
}

func (r *MealRequest) applyTo(meal *models.Meal) {
	meal.MealDate = r.MealDate
	meal.MealTime = r.MealTime
	meal.MealType = r.MealType
	meal.FoodCount = r.FoodCount
	meal.Food1Name = r.Food1Name
	meal.Food1Calories = r.Food1Calories
	meal.Food2Name = r.Food2Name
	meal.Food2Calories = r.Food2Calories
	meal.Food3Name = r.Food3Name
	meal.Food3Calories = r.Food3Calories
	meal.CalculateTotalCalories()
}

func (s *MealService) CreateMeal(req *MealRequest) (*models.Meal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.auth.GetUserByUniqueCode(req.UserUniqueCode)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{UserUniqueCode: user.UniqueCode}
	req.applyTo(meal)

	if err := s.db.Create(meal).Error; err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	return meal, nil
}

// UpdateMeal replaces date, time, type and the full slot set of an existing
// meal. There is no partial patch; the total is recomputed from the new
// slots with nothing left over from the old ones.
func (s *MealService) UpdateMeal(mealID uint, req *MealRequest) (*models.Meal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var meal models.Meal
	if err := s.db.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, fmt.Errorf("find meal: %w", err)
	}

	req.applyTo(&meal)

	if err := s.db.Save(&meal).Error; err != nil {
		return nil, fmt.Errorf("update meal: %w", err)
	}
	return &meal, nil
}

// DeleteMeal removes the meal unconditionally. Training-data logs that
// reference it are left in place.
func (s *MealService) DeleteMeal(mealID uint) error {
	var meal models.Meal
	if err := s.db.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		return fmt.Errorf("find meal: %w", err)
	}
	if err := s.db.Delete(&meal).Error; err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	return nil
}

func (s *MealService) GetMeal(mealID uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, fmt.Errorf("find meal: %w", err)
	}
	return &meal, nil
}

func (s *MealService) GetMealsByUserCodeAndDate(code, date string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_unique_code = ? AND meal_date = ?", code, date).
		Order("id ASC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("list meals by date: %w", err)
	}
	return meals, nil
}

// GetMealsByUserCodeAndDateRange lists meals with start <= meal_date <= end.
func (s *MealService) GetMealsByUserCodeAndDateRange(code, start, end string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_unique_code = ? AND meal_date BETWEEN ? AND ?", code, start, end).
		Order("meal_date ASC, id ASC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("list meals by range: %w", err)
	}
	return meals, nil
}
