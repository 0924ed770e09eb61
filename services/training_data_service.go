package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/models"

	"gorm.io/gorm"
)

// TrainingDataService captures (image, AI prediction, user-corrected truth)
// tuples for later offline model retraining. It runs strictly after the
// meal write has committed and its failures never propagate back into the
// meal flow: the orchestrating caller logs the error and moves on.
type TrainingDataService struct {
	db    *gorm.DB
	store ImageStore
}

func NewTrainingDataService(db *gorm.DB, store ImageStore) *TrainingDataService {
	return &TrainingDataService{db: db, store: store}
}

// SaveTrainingData stores the image, serializes both snapshot documents and
// writes one immutable log row. Either failure aborts the capture as a
// whole; a half-written capture (image without row, or row without image)
// is avoided by writing the row last.
func (s *TrainingDataService) SaveTrainingData(
	image []byte,
	originalFilename string,
	userUniqueCode string,
	mealID *uint,
	aiPrediction map[string]interface{},
	userCorrected map[string]interface{},
) (uint, error) {
	if len(image) == 0 {
		return 0, fmt.Errorf("%w: image is empty", ErrValidation)
	}

	imagePath, err := s.store.Save(image, originalFilename, userUniqueCode)
	if err != nil {
		return 0, fmt.Errorf("store training image: %w", err)
	}

	aiJSON, err := json.Marshal(aiPrediction)
	if err != nil {
		return 0, fmt.Errorf("serialize AI prediction: %w", err)
	}
	correctedJSON, err := json.Marshal(userCorrected)
	if err != nil {
		return 0, fmt.Errorf("serialize user correction: %w", err)
	}

	row := models.TrainingDataLog{
		UserUniqueCode: userUniqueCode,
		MealID:         mealID,
		ImagePath:      imagePath,
		AIPrediction:   string(aiJSON),
		UserCorrected:  string(correctedJSON),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return 0, fmt.Errorf("save training data log: %w", err)
	}

	log.Printf("Training data captured: log=%d image=%s", row.LogID, imagePath)
	return row.LogID, nil
}

// BuildUserCorrected reassembles the ground-truth document from the meal
// the user just saved. Truth is defined as exactly what got persisted,
// never re-derived from the AI prediction.
func BuildUserCorrected(meal *models.Meal) map[string]interface{} {
	doc := map[string]interface{}{
		"food_count": meal.FoodCount,
	}

	names := []*string{meal.Food1Name, meal.Food2Name, meal.Food3Name}
	calories := []*int{meal.Food1Calories, meal.Food2Calories, meal.Food3Calories}
	for i, name := range names {
		if name == nil {
			continue
		}
		food := map[string]interface{}{"name": *name}
		if calories[i] != nil {
			food["calories"] = *calories[i]
		}
		doc[fmt.Sprintf("food%d", i+1)] = food
	}
	return doc
}

func (s *TrainingDataService) ListByUserCode(code string) ([]models.TrainingDataLog, error) {
	var logs []models.TrainingDataLog
	err := s.db.
		Where("user_unique_code = ?", code).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list training data by user: %w", err)
	}
	return logs, nil
}

func (s *TrainingDataService) ListByMealID(mealID uint) ([]models.TrainingDataLog, error) {
	var logs []models.TrainingDataLog
	err := s.db.
		Where("meal_id = ?", mealID).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list training data by meal: %w", err)
	}
	return logs, nil
}

// ListRecent returns the newest capture records for the admin console.
func (s *TrainingDataService) ListRecent(limit int) ([]models.TrainingDataLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var logs []models.TrainingDataLog
	err := s.db.
		Order("created_at DESC, log_id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list recent training data: %w", err)
	}
	return logs, nil
}
