package models

import (
	"time"

	"gorm.io/gorm"
)

type MealType string

const (
	MealTypeBreakfast MealType = "BREAKFAST"
	MealTypeLunch     MealType = "LUNCH"
	MealTypeDinner    MealType = "DINNER"
	MealTypeSnack     MealType = "SNACK"
)

var mealTypeLabels = map[MealType]string{
	MealTypeBreakfast: "아침",
	MealTypeLunch:     "점심",
	MealTypeDinner:    "저녁",
	MealTypeSnack:     "간식",
}

func (t MealType) Valid() bool {
	_, ok := mealTypeLabels[t]
	return ok
}

// Label returns the fixed display name shown in the app.
func (t MealType) Label() string {
	return mealTypeLabels[t]
}

// FoodSlot is one populated (name, calories) pair of a meal.
type FoodSlot struct {
	Name     string `json:"name"`
	Calories *int   `json:"calories"`
}

// A Meal holds up to three embedded food slots. The flat food1..food3
// columns are a fixed-arity denormalization: exactly FoodCount of them
// are populated, in order, and slots past FoodCount stay null.
type Meal struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	UserUniqueCode string   `gorm:"size:10;not null;index:idx_user_code_date" json:"user_unique_code"`
	MealDate       string   `gorm:"size:10;not null;index:idx_user_code_date" json:"meal_date"` // YYYY-MM-DD
	MealTime       string   `gorm:"size:8;not null" json:"meal_time"`                           // HH:MM:SS
	MealType       MealType `gorm:"size:20;not null" json:"meal_type"`
	MealTypeLabel  string   `gorm:"-" json:"meal_type_label"`
	FoodCount      int      `gorm:"not null" json:"food_count"`

	Food1Name     *string `gorm:"size:255" json:"food1_name"`
	Food1Calories *int    `json:"food1_calories"`
	Food2Name     *string `gorm:"size:255" json:"food2_name"`
	Food2Calories *int    `json:"food2_calories"`
	Food3Name     *string `gorm:"size:255" json:"food3_name"`
	Food3Calories *int    `json:"food3_calories"`

	TotalCalories int       `json:"total_calories"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CalculateTotalCalories recomputes the derived total from the slots in
// fixed order. A slot with no calorie value contributes 0. Must be called
// whenever a slot or the slot count changes so the total is never stale.
func (m *Meal) CalculateTotalCalories() {
	total := 0
	for _, c := range []*int{m.Food1Calories, m.Food2Calories, m.Food3Calories} {
		if c != nil {
			total += *c
		}
	}
	m.TotalCalories = total
	m.MealTypeLabel = m.MealType.Label()
}

// Slots returns the populated food slots in slot order (1, 2, 3).
func (m *Meal) Slots() []FoodSlot {
	names := []*string{m.Food1Name, m.Food2Name, m.Food3Name}
	calories := []*int{m.Food1Calories, m.Food2Calories, m.Food3Calories}

	var slots []FoodSlot
	for i, name := range names {
		if name == nil {
			continue
		}
		slots = append(slots, FoodSlot{Name: *name, Calories: calories[i]})
	}
	return slots
}

func (m *Meal) AfterFind(*gorm.DB) error {
	m.MealTypeLabel = m.MealType.Label()
	return nil
}
