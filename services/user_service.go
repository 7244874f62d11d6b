package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/JPF032/Livora-Up-sub001/config"
	"github.com/JPF032/Livora-Up-sub001/models"
	"github.com/JPF032/Livora-Up-sub001/utils"
)

type ProfileInput struct {
	FullName         string  `json:"full_name"`
	HeightCm         float64 `json:"height_cm"`
	WeightKg         float64 `json:"weight_kg"`
	FitnessGoal      string  `json:"fitness_goal"`
	DailyCalorieGoal int     `json:"daily_calorie_goal"`
	ProfilePicture   string  `json:"profile_picture"` // base64 data URI
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	profile := map[string]interface{}{
		"id":                 user.ID,
		"email":              user.Email,
		"full_name":          user.FullName,
		"height_cm":          user.HeightCm,
		"weight_kg":          user.WeightKg,
		"fitness_goal":       user.FitnessGoal,
		"daily_calorie_goal": user.DailyCalorieGoal,
		"profile_picture":    user.ProfilePicture,
	}

	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.FitnessGoal != "" {
		user.FitnessGoal = input.FitnessGoal
	}
	if input.DailyCalorieGoal > 0 {
		user.DailyCalorieGoal = input.DailyCalorieGoal
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "profiles/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload profile picture: %w", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func SetResetToken(user *models.User, token string, ttl time.Duration) error {
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(ttl)
	return config.DB.Save(user).Error
}
