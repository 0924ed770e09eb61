package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals    *services.MealService
	training *services.TrainingDataService
}

func NewMealController(meals *services.MealService, training *services.TrainingDataService) *MealController {
	return &MealController{meals: meals, training: training}
}

func (ctl *MealController) CreateMeal(c *gin.Context) {
	var req services.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := ctl.meals.CreateMeal(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// CreateMealWithTrainingData handles camera-based entries: a multipart form
// carrying the image, the recognizer's raw prediction and the meal data the
// user confirmed. The meal write commits first; the capture step runs after
// it and its failure is logged and dropped, never surfaced to the client.
func (ctl *MealController) CreateMealWithTrainingData(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	var req services.MealRequest
	if err := json.Unmarshal([]byte(c.PostForm("mealRequest")), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mealRequest JSON"})
		return
	}

	var aiPrediction map[string]interface{}
	if err := json.Unmarshal([]byte(c.PostForm("aiPrediction")), &aiPrediction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid aiPrediction JSON"})
		return
	}

	meal, err := ctl.meals.CreateMeal(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	// The meal is durable at this point. Capture is best-effort.
	mealID := meal.ID
	corrected := services.BuildUserCorrected(meal)
	logID, err := ctl.training.SaveTrainingData(
		image, header.Filename, meal.UserUniqueCode, &mealID, aiPrediction, corrected)
	if err != nil {
		log.Printf("Training data capture failed (meal %d kept): %v", meal.ID, err)
	} else {
		log.Printf("Training data captured for meal %d: log=%d", meal.ID, logID)
	}

	c.JSON(http.StatusCreated, meal)
}

func (ctl *MealController) UpdateMeal(c *gin.Context) {
	mealID, ok := parseIDParam(c, "mealId")
	if !ok {
		return
	}

	var req services.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := ctl.meals.UpdateMeal(mealID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) DeleteMeal(c *gin.Context) {
	mealID, ok := parseIDParam(c, "mealId")
	if !ok {
		return
	}

	if err := ctl.meals.DeleteMeal(mealID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *MealController) GetMeal(c *gin.Context) {
	mealID, ok := parseIDParam(c, "mealId")
	if !ok {
		return
	}

	meal, err := ctl.meals.GetMeal(mealID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// ListMeals serves GET /users/:code/meals with either ?date=YYYY-MM-DD or
// ?start=YYYY-MM-DD&end=YYYY-MM-DD (inclusive bounds).
func (ctl *MealController) ListMeals(c *gin.Context) {
	code := c.Param("code")

	if date := c.Query("date"); date != "" {
		meals, err := ctl.meals.GetMealsByUserCodeAndDate(code, date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date or start/end query params required"})
		return
	}
	meals, err := ctl.meals.GetMealsByUserCodeAndDateRange(code, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}
