package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/services"

	"github.com/gin-gonic/gin"
)

type TrainingDataController struct {
	training *services.TrainingDataService
}

func NewTrainingDataController(training *services.TrainingDataService) *TrainingDataController {
	return &TrainingDataController{training: training}
}

// Collect accepts a standalone capture upload for clients that persist the
// meal first and submit the training tuple in a second call.
func (ctl *TrainingDataController) Collect(c *gin.Context) {
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
	if len(image) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is empty"})
		return
	}

	userCode := c.PostForm("userUniqueCode")
	if userCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userUniqueCode is required"})
		return
	}

	var mealID *uint
	if raw := c.PostForm("mealId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mealId"})
			return
		}
		v := uint(id)
		mealID = &v
	}

	var aiPrediction, userCorrected map[string]interface{}
	if err := json.Unmarshal([]byte(c.PostForm("aiPrediction")), &aiPrediction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid aiPrediction JSON"})
		return
	}
	if err := json.Unmarshal([]byte(c.PostForm("userCorrected")), &userCorrected); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userCorrected JSON"})
		return
	}

	logID, err := ctl.training.SaveTrainingData(image, header.Filename, userCode, mealID, aiPrediction, userCorrected)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"log_id": logID})
}

func (ctl *TrainingDataController) ListByUser(c *gin.Context) {
	logs, err := ctl.training.ListByUserCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (ctl *TrainingDataController) ListByMeal(c *gin.Context) {
	mealID, ok := parseIDParam(c, "mealId")
	if !ok {
		return
	}

	logs, err := ctl.training.ListByMealID(mealID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (ctl *TrainingDataController) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	logs, err := ctl.training.ListRecent(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
