package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/config"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Meal{},
		&models.TrainingDataLog{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		DefaultCalorieGoal: 2000,
		AdminUsername:      "admin",
		AdminPassword:      "admin1234",
	}
}

func createTestUser(t *testing.T, db *gorm.DB, code string, goal *int) *models.User {
	t.Helper()

	user := &models.User{
		UniqueCode:       code,
		Name:             "Tester",
		Email:            fmt.Sprintf("%s@example.com", code),
		Password:         "x",
		DailyCalorieGoal: goal,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// fakeImageStore lets tests force the artifact layer to fail.
type fakeImageStore struct {
	failSave bool
	saved    []string
}

var errFakeStore = errors.New("disk full")

func (f *fakeImageStore) Save(data []byte, originalFilename, userUniqueCode string) (string, error) {
	if f.failSave {
		return "", errFakeStore
	}
	path := fmt.Sprintf("/fake/%s/%s", userUniqueCode, originalFilename)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeImageStore) Exists(path string) bool {
	for _, p := range f.saved {
		if p == path {
			return true
		}
	}
	return false
}

func (f *fakeImageStore) Delete(path string) (bool, error) {
	for i, p := range f.saved {
		if p == path {
			f.saved = append(f.saved[:i], f.saved[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
