package routes

import (
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/config"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/controllers"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/middlewares"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/services"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB, store services.ImageStore, mailer *utils.Mailer) *gin.Engine {
	authSvc := services.NewAuthService(db, cfg, mailer)
	mealSvc := services.NewMealService(db, authSvc)
	calorieSvc := services.NewCalorieService(db, mealSvc, authSvc, cfg)
	trainingSvc := services.NewTrainingDataService(db, store)
	recognitionSvc := services.NewFoodRecognitionService(cfg.RecognizerURL)
	adminSvc := services.NewAdminService(db, cfg)

	authCtl := controllers.NewAuthController(authSvc)
	mealCtl := controllers.NewMealController(mealSvc, trainingSvc)
	calorieCtl := controllers.NewCalorieController(calorieSvc)
	trainingCtl := controllers.NewTrainingDataController(trainingSvc)
	foodCtl := controllers.NewFoodController(recognitionSvc)
	adminCtl := controllers.NewAdminController(adminSvc)

	r := gin.Default()

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authCtl.SignUp)
		auth.POST("/login", authCtl.Login)
	}

	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware([]byte(cfg.JWTSecret)))
	{
		user.GET("/profile", authCtl.GetProfile)
		user.PUT("/goal", authCtl.UpdateGoal)
	}

	meals := r.Group("/meals")
	{
		meals.POST("", mealCtl.CreateMeal)
		meals.POST("/with-training-data", mealCtl.CreateMealWithTrainingData)
		meals.GET("/:mealId", mealCtl.GetMeal)
		meals.PUT("/:mealId", mealCtl.UpdateMeal)
		meals.DELETE("/:mealId", mealCtl.DeleteMeal)
	}

	r.GET("/users/:code/meals", mealCtl.ListMeals)

	calories := r.Group("/calories")
	{
		calories.GET("/daily/:code/:date", calorieCtl.GetDaily)
		calories.GET("/monthly/:code/:year/:month", calorieCtl.GetMonthly)
	}

	training := r.Group("/training")
	{
		training.POST("/collect", trainingCtl.Collect)
		training.GET("/user/:code", trainingCtl.ListByUser)
		training.GET("/meal/:mealId", trainingCtl.ListByMeal)
		training.GET("/recent", trainingCtl.ListRecent)
	}

	food := r.Group("/food")
	{
		food.POST("/recognize", foodCtl.Recognize)
		food.GET("/search", foodCtl.Search)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", adminCtl.Login)
		admin.GET("/users", adminCtl.ListUsers)
		admin.POST("/users/:userId/reset-password", adminCtl.ResetUserPassword)
		admin.DELETE("/users/:userId", adminCtl.DeleteUser)
	}

	return r
}
