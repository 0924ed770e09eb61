package services

import (
	"fmt"
	"time"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/config"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/models"

	"gorm.io/gorm"
)

type CalorieService struct {
	db    *gorm.DB
	meals *MealService
	auth  *AuthService
	cfg   *config.Config
}

func NewCalorieService(db *gorm.DB, meals *MealService, auth *AuthService, cfg *config.Config) *CalorieService {
	return &CalorieService{db: db, meals: meals, auth: auth, cfg: cfg}
}

type DailyCalorieResponse struct {
	Date             string        `json:"date"`
	TargetCalories   int           `json:"target_calories"`
	ActualCalories   int           `json:"actual_calories"`
	ExceededCalories int           `json:"exceeded_calories"`
	Meals            []models.Meal `json:"meals"`
}

type MonthlyCalorieResponse struct {
	Year           int            `json:"year"`
	Month          int            `json:"month"`
	TargetCalories int            `json:"target_calories"`
	DailyCalories  map[string]int `json:"daily_calories"`
}

// GetDailyCalories sums the day's meal totals against the user's goal.
// Exceeded may be negative; a day with no meals yields actual 0 and
// exceeded -target.
func (s *CalorieService) GetDailyCalories(code, date string) (*DailyCalorieResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	user, err := s.auth.GetUserByUniqueCode(code)
	if err != nil {
		return nil, err
	}

	meals, err := s.meals.GetMealsByUserCodeAndDate(code, date)
	if err != nil {
		return nil, err
	}

	actual := 0
	for _, m := range meals {
		actual += m.TotalCalories
	}
	target := s.goalOrDefault(user)

	return &DailyCalorieResponse{
		Date:             date,
		TargetCalories:   target,
		ActualCalories:   actual,
		ExceededCalories: actual - target,
		Meals:            meals,
	}, nil
}

// GetMonthlyCalories aggregates per-date totals for the whole month with a
// database-side grouped sum rather than loading every meal row. Dates with
// no meals are absent from the map; callers treat absence as zero.
func (s *CalorieService) GetMonthlyCalories(code string, year, month int) (*MonthlyCalorieResponse, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrValidation)
	}
	if year < 1 {
		return nil, fmt.Errorf("%w: invalid year", ErrValidation)
	}

	user, err := s.auth.GetUserByUniqueCode(code)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	start := first.Format("2006-01-02")
	end := last.Format("2006-01-02")

	var rows []struct {
		MealDate string
		Total    int
	}
	err = s.db.Model(&models.Meal{}).
		Select("meal_date, SUM(total_calories) AS total").
		Where("user_unique_code = ? AND meal_date BETWEEN ? AND ?", code, start, end).
		Group("meal_date").
		Order("meal_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate monthly calories: %w", err)
	}

	daily := make(map[string]int, len(rows))
	for _, r := range rows {
		daily[r.MealDate] = r.Total
	}

	return &MonthlyCalorieResponse{
		Year:           year,
		Month:          month,
		TargetCalories: s.goalOrDefault(user),
		DailyCalories:  daily,
	}, nil
}

func (s *CalorieService) goalOrDefault(user *models.User) int {
	if user.DailyCalorieGoal != nil {
		return *user.DailyCalorieGoal
	}
	return s.cfg.DefaultCalorieGoal
}
