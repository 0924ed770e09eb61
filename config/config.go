package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config carries every environment-derived setting. It is loaded once at
// startup and handed to the components that need it, so nothing reads the
// environment ad hoc at call sites.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string

	// DefaultCalorieGoal is applied when a user signs up without a goal
	// and when summaries are computed for a user whose goal is unset.
	DefaultCalorieGoal int

	AdminUsername string
	AdminPassword string

	// StorageBackend selects where training images land: "local" or "s3".
	StorageBackend    string
	TrainingImagePath string
	S3Bucket          string
	S3Region          string

	// RecognizerURL is the base URL of the food recognition inference service.
	RecognizerURL string

	SESRegion string
	SESSender string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	return &Config{
		Port:               getenv("PORT", "8080"),
		DBHost:             getenv("DB_HOST", "localhost"),
		DBUser:             getenv("DB_USER", "postgres"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             getenv("DB_NAME", "foodkcalcheck"),
		DBPort:             getenv("DB_PORT", "5432"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		DefaultCalorieGoal: getenvInt("DEFAULT_CALORIE_GOAL", 2000),
		AdminUsername:      getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getenv("ADMIN_PASSWORD", "admin1234"),
		StorageBackend:     getenv("TRAINING_IMAGE_BACKEND", "local"),
		TrainingImagePath:  getenv("TRAINING_IMAGE_PATH", "/app/training_images"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		S3Region:           getenv("S3_REGION", os.Getenv("AWS_REGION")),
		RecognizerURL:      getenv("RECOGNIZER_URL", "http://localhost:8000"),
		SESRegion:          getenv("SES_REGION", os.Getenv("AWS_REGION")),
		SESSender:          os.Getenv("SES_EMAIL"),
	}
}

func InitDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Meal{},
		&models.TrainingDataLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
