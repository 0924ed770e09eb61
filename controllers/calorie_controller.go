package controllers

import (
	"net/http"
	"strconv"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/services"

	"github.com/gin-gonic/gin"
)

type CalorieController struct {
	calories *services.CalorieService
}

func NewCalorieController(calories *services.CalorieService) *CalorieController {
	return &CalorieController{calories: calories}
}

func (ctl *CalorieController) GetDaily(c *gin.Context) {
	code := c.Param("code")
	date := c.Param("date")

	resp, err := ctl.calories.GetDailyCalories(code, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctl *CalorieController) GetMonthly(c *gin.Context) {
	code := c.Param("code")

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	resp, err := ctl.calories.GetMonthlyCalories(code, year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
