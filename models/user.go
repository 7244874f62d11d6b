package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email            string `gorm:"uniqueIndex;not null"`
    Password         string `gorm:"not null"`
    FullName         string
    HeightCm         float64
    WeightKg         float64
    FitnessGoal      string
    DailyCalorieGoal int
    ProfilePicture   string
    ResetToken       string
    ResetTokenExp    time.Time
    Disabled         bool
}
