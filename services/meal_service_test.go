package services

import (
	"errors"
	"testing"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/models"
)

func newMealFixture(t *testing.T) (*MealService, *AuthService) {
	t.Helper()
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig(), nil)
	return NewMealService(db, auth), auth
}

func TestCreateMealComputesTotal(t *testing.T) {
	meals, auth := newMealFixture(t)
	createTestUser(t, auth.db, "aB3xK9pQr2", nil)

	req := &MealRequest{
		UserUniqueCode: "aB3xK9pQr2",
		MealDate:       "2024-03-01",
		MealTime:       "08:00",
		MealType:       models.MealTypeBreakfast,
		FoodCount:      2,
		Food1Name:      strPtr("Rice"),
		Food1Calories:  intPtr(300),
		Food2Name:      strPtr("Kimchi Stew"),
		Food2Calories:  intPtr(200),
	}

	meal, err := meals.CreateMeal(req)
	if err != nil {
		t.Fatalf("CreateMeal: %v", err)
	}
	if meal.TotalCalories != 500 {
		t.Errorf("total = %d, want 500", meal.TotalCalories)
	}
	if meal.MealTime != "08:00:00" {
		t.Errorf("meal time = %q, want normalized 08:00:00", meal.MealTime)
	}

	got, err := meals.GetMeal(meal.ID)
	if err != nil {
		t.Fatalf("GetMeal: %v", err)
	}
	if got.TotalCalories != 500 || got.FoodCount != 2 {
		t.Errorf("reloaded meal = total %d count %d, want 500/2", got.TotalCalories, got.FoodCount)
	}
	if *got.Food1Name != "Rice" || *got.Food1Calories != 300 {
		t.Errorf("slot 1 = (%v, %v), want (Rice, 300)", *got.Food1Name, *got.Food1Calories)
	}
	if *got.Food2Name != "Kimchi Stew" || *got.Food2Calories != 200 {
		t.Errorf("slot 2 = (%v, %v), want (Kimchi Stew, 200)", *got.Food2Name, *got.Food2Calories)
	}
	if got.Food3Name != nil || got.Food3Calories != nil {
		t.Errorf("slot 3 should be empty, got (%v, %v)", got.Food3Name, got.Food3Calories)
	}
}

func TestCreateMealSlotWithoutCaloriesCountsZero(t *testing.T) {
	meals, auth := newMealFixture(t)
	createTestUser(t, auth.db, "codecodeAA", nil)

	meal, err := meals.CreateMeal(&MealRequest{
		UserUniqueCode: "codecodeAA",
		MealDate:       "2024-03-01",
		MealTime:       "12:00",
		MealType:       models.MealTypeLunch,
		FoodCount:      2,
		Food1Name:      strPtr("Salad"),
		Food1Calories:  intPtr(150),
		Food2Name:      strPtr("Water"),
	})
	if err != nil {
		t.Fatalf("CreateMeal: %v", err)
	}
	if meal.TotalCalories != 150 {
		t.Errorf("total = %d, want 150 (nil calories contribute 0)", meal.TotalCalories)
	}
}

func TestUpdateMealReplacesSlotsAndRecomputes(t *testing.T) {
	meals, auth := newMealFixture(t)
	createTestUser(t, auth.db, "codecodeAA", nil)

	meal, err := meals.CreateMeal(&MealRequest{
		UserUniqueCode: "codecodeAA",
		MealDate:       "2024-03-01",
		MealTime:       "19:00",
		MealType:       models.MealTypeDinner,
		FoodCount:      3,
		Food1Name:      strPtr("Bibimbap"),
		Food1Calories:  intPtr(550),
		Food2Name:      strPtr("Soup"),
		Food2Calories:  intPtr(120),
		Food3Name:      strPtr("Side"),
		Food3Calories:  intPtr(80),
	})
	if err != nil {
		t.Fatalf("CreateMeal: %v", err)
	}
	if meal.TotalCalories != 750 {
		t.Fatalf("total = %d, want 750", meal.TotalCalories)
	}

	updated, err := meals.UpdateMeal(meal.ID, &MealRequest{
		UserUniqueCode: "codecodeAA",
		MealDate:       "2024-03-02",
		MealTime:       "20:00",
		MealType:       models.MealTypeSnack,
		FoodCount:      1,
		Food1Name:      strPtr("Apple"),
		Food1Calories:  intPtr(95),
	})
	if err != nil {
		t.Fatalf("UpdateMeal: %v", err)
	}

	if updated.TotalCalories != 95 {
		t.Errorf("total = %d, want 95 with no residue from the old slots", updated.TotalCalories)
	}
	if updated.Food2Name != nil || updated.Food2Calories != nil ||
		updated.Food3Name != nil || updated.Food3Calories != nil {
		t.Error("old slots survived the full replacement")
	}
	if updated.MealDate != "2024-03-02" || updated.MealType != models.MealTypeSnack {
		t.Errorf("date/type not replaced: %s %s", updated.MealDate, updated.MealType)
	}
}

func TestCreateMealUnknownUser(t *testing.T) {
	meals, _ := newMealFixture(t)

	_, err := meals.CreateMeal(&MealRequest{
		UserUniqueCode: "nobodyhere",
		MealDate:       "2024-03-01",
		MealTime:       "08:00",
		MealType:       models.MealTypeBreakfast,
		FoodCount:      1,
		Food1Name:      strPtr("Rice"),
		Food1Calories:  intPtr(300),
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestCreateMealValidation(t *testing.T) {
	meals, auth := newMealFixture(t)
	createTestUser(t, auth.db, "codecodeAA", nil)

	cases := []struct {
		name string
		req  MealRequest
	}{
		{"bad date", MealRequest{UserUniqueCode: "codecodeAA", MealDate: "03/01/2024", MealTime: "08:00", MealType: models.MealTypeBreakfast, FoodCount: 1}},
		{"bad time", MealRequest{UserUniqueCode: "codecodeAA", MealDate: "2024-03-01", MealTime: "8 o'clock", MealType: models.MealTypeBreakfast, FoodCount: 1}},
		{"bad type", MealRequest{UserUniqueCode: "codecodeAA", MealDate: "2024-03-01", MealTime: "08:00", MealType: "BRUNCH", FoodCount: 1}},
		{"count too low", MealRequest{UserUniqueCode: "codecodeAA", MealDate: "2024-03-01", MealTime: "08:00", MealType: models.MealTypeBreakfast, FoodCount: 0}},
		{"count too high", MealRequest{UserUniqueCode: "codecodeAA", MealDate: "2024-03-01", MealTime: "08:00", MealType: models.MealTypeBreakfast, FoodCount: 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := meals.CreateMeal(&tc.req); !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestDeleteMealNotFound(t *testing.T) {
	meals, auth := newMealFixture(t)
	createTestUser(t, auth.db, "codecodeAA", nil)

	if _, err := meals.CreateMeal(&MealRequest{
		UserUniqueCode: "codecodeAA",
		MealDate:       "2024-03-01",
		MealTime:       "08:00",
		MealType:       models.MealTypeBreakfast,
		FoodCount:      1,
		Food1Name:      strPtr("Rice"),
		Food1Calories:  intPtr(300),
	}); err != nil {
		t.Fatalf("CreateMeal: %v", err)
	}

	if err := meals.DeleteMeal(9999); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("err = %v, want ErrMealNotFound", err)
	}

	var count int64
	meals.db.Model(&models.Meal{}).Count(&count)
	if count != 1 {
		t.Errorf("meal count = %d after failed delete, want 1", count)
	}
}

func TestDeleteMealRemovesRow(t *testing.T) {
	meals, auth := newMealFixture(t)
	createTestUser(t, auth.db, "codecodeAA", nil)

	meal, err := meals.CreateMeal(&MealRequest{
		UserUniqueCode: "codecodeAA",
		MealDate:       "2024-03-01",
		MealTime:       "08:00",
		MealType:       models.MealTypeBreakfast,
		FoodCount:      1,
		Food1Name:      strPtr("Rice"),
		Food1Calories:  intPtr(300),
	})
	if err != nil {
		t.Fatalf("CreateMeal: %v", err)
	}

	if err := meals.DeleteMeal(meal.ID); err != nil {
		t.Fatalf("DeleteMeal: %v", err)
	}
	if _, err := meals.GetMeal(meal.ID); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("err = %v after delete, want ErrMealNotFound", err)
	}
}

func TestListMealsByDateKeepsInsertionOrder(t *testing.T) {
	meals, auth := newMealFixture(t)
	createTestUser(t, auth.db, "codecodeAA", nil)

	for _, mt := range []models.MealType{models.MealTypeBreakfast, models.MealTypeLunch, models.MealTypeDinner} {
		if _, err := meals.CreateMeal(&MealRequest{
			UserUniqueCode: "codecodeAA",
			MealDate:       "2024-03-01",
			MealTime:       "08:00",
			MealType:       mt,
			FoodCount:      1,
			Food1Name:      strPtr("Rice"),
			Food1Calories:  intPtr(300),
		}); err != nil {
			t.Fatalf("CreateMeal(%s): %v", mt, err)
		}
	}

	list, err := meals.GetMealsByUserCodeAndDate("codecodeAA", "2024-03-01")
	if err != nil {
		t.Fatalf("GetMealsByUserCodeAndDate: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	want := []models.MealType{models.MealTypeBreakfast, models.MealTypeLunch, models.MealTypeDinner}
	for i, m := range list {
		if m.MealType != want[i] {
			t.Errorf("list[%d] = %s, want %s", i, m.MealType, want[i])
		}
	}

	empty, err := meals.GetMealsByUserCodeAndDate("codecodeAA", "2024-03-15")
	if err != nil {
		t.Fatalf("GetMealsByUserCodeAndDate(empty): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("len = %d for empty day, want 0", len(empty))
	}
}

func TestListMealsByRangeInclusiveBounds(t *testing.T) {
	meals, auth := newMealFixture(t)
	createTestUser(t, auth.db, "codecodeAA", nil)

	for _, date := range []string{"2024-02-29", "2024-03-01", "2024-03-15", "2024-03-31", "2024-04-01"} {
		if _, err := meals.CreateMeal(&MealRequest{
			UserUniqueCode: "codecodeAA",
			MealDate:       date,
			MealTime:       "12:00",
			MealType:       models.MealTypeLunch,
			FoodCount:      1,
			Food1Name:      strPtr("Rice"),
			Food1Calories:  intPtr(300),
		}); err != nil {
			t.Fatalf("CreateMeal(%s): %v", date, err)
		}
	}

	list, err := meals.GetMealsByUserCodeAndDateRange("codecodeAA", "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GetMealsByUserCodeAndDateRange: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3 (bounds inclusive)", len(list))
	}
	if list[0].MealDate != "2024-03-01" || list[2].MealDate != "2024-03-31" {
		t.Errorf("range = %s..%s, want 2024-03-01..2024-03-31", list[0].MealDate, list[2].MealDate)
	}
}
