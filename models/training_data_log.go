package models

import "time"

// TrainingDataLog pairs a stored food image with the model's raw prediction
// and the data the user actually saved. Rows are written once and never
// updated; deleting a meal leaves its logs behind with a dangling meal_id,
// since they are historical training artifacts.
type TrainingDataLog struct {
	LogID          uint      `gorm:"primaryKey;column:log_id" json:"log_id"`
	UserUniqueCode string    `gorm:"size:10;not null;index" json:"user_unique_code"`
	MealID         *uint     `gorm:"index" json:"meal_id"`
	ImagePath      string    `gorm:"size:512;not null" json:"image_path"`
	AIPrediction   string    `gorm:"type:text;column:ai_prediction" json:"ai_prediction"`
	UserCorrected  string    `gorm:"type:text;column:user_corrected_json" json:"user_corrected"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}
