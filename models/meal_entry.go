package models

import (
    "time"

    "gorm.io/gorm"
)

// One logged meal, owned by exactly one user. Entries are append-only:
// nothing in the app mutates them after creation (except a best-effort
// photo URL backfill right after the photo upload finishes).
type MealEntry struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null" json:"user_id"`
    FoodName string `gorm:"not null" json:"food_name"`
    Calories int    `gorm:"not null" json:"calories"`
    AteAt    time.Time `json:"ate_at"`
    PhotoURL string    `json:"photo_url,omitempty"`
}
