package controllers

import (
	"io"
	"net/http"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	recognition *services.FoodRecognitionService
}

func NewFoodController(recognition *services.FoodRecognitionService) *FoodController {
	return &FoodController{recognition: recognition}
}

func (ctl *FoodController) Recognize(c *gin.Context) {
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

	resp, err := ctl.recognition.RecognizeFood(image, header.Filename)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctl *FoodController) Search(c *gin.Context) {
	foodName := c.Query("foodName")
	if foodName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foodName query param is required"})
		return
	}

	resp, err := ctl.recognition.SearchFood(foodName)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
