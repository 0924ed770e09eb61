package controllers

import (
	"net/http"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (ctl *AuthController) SignUp(c *gin.Context) {
	var req services.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := ctl.auth.SignUp(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := ctl.auth.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctl *AuthController) GetProfile(c *gin.Context) {
	code := c.GetString("uniqueCode")

	user, err := ctl.auth.GetUserByUniqueCode(code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *AuthController) UpdateGoal(c *gin.Context) {
	code := c.GetString("uniqueCode")

	var req struct {
		DailyCalorieGoal int `json:"daily_calorie_goal" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.auth.UpdateDailyCalorieGoal(code, req.DailyCalorieGoal); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
