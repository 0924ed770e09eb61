package models

import "time"

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UniqueCode       string    `gorm:"uniqueIndex;size:10;not null" json:"unique_code"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Email            string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	DailyCalorieGoal *int      `json:"daily_calorie_goal"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
