package main

import (
	"log"
	"os"
	"time"

	"github.com/JPF032/Livora-Up-sub001/config"
	"github.com/JPF032/Livora-Up-sub001/models"
	"github.com/JPF032/Livora-Up-sub001/utils"
)

// Seeds a demo account plus one day of meal entries into the dev
// database. Safe to re-run: the user upserts by email, entries append.
func main() {
	config.InitDB()

	email := os.Getenv("SEED_EMAIL")
	if email == "" {
		email = "demo@livora.app"
	}
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "livora-demo"
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		user = models.User{
			Email:            email,
			Password:         hashed,
			FullName:         "Livora Demo",
			HeightCm:         175,
			WeightKg:         70,
			FitnessGoal:      "maintain",
			DailyCalorieGoal: 2200,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatalf("create demo user: %v", err)
		}
		log.Printf("created demo user %s (id %d)", email, user.ID)
	} else {
		log.Printf("demo user %s already present (id %d)", email, user.ID)
	}

	today := time.Now()
	meals := []models.MealEntry{
		{UserID: user.ID, FoodName: "egg", Calories: 78, AteAt: at(today, 8)},
		{UserID: user.ID, FoodName: "sandwich", Calories: 400, AteAt: at(today, 12)},
		{UserID: user.ID, FoodName: "apple", Calories: 95, AteAt: at(today, 16)},
		{UserID: user.ID, FoodName: "pasta", Calories: 350, AteAt: at(today, 19)},
	}
	for i := range meals {
		if err := config.DB.Create(&meals[i]).Error; err != nil {
			log.Fatalf("create meal entry: %v", err)
		}
	}
	log.Printf("seeded %d meal entries for user %d", len(meals), user.ID)
}

func at(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}
