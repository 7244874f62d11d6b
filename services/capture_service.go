package services

import (
	"fmt"
	"log"
	"time"

	"github.com/JPF032/Livora-Up-sub001/models"
)

// VisionAnalyzer yields the model's ranked concepts for one image.
type VisionAnalyzer interface {
	AnalyzeFood(base64Image string) ([]FoodConcept, error)
}

// MealWriter persists one estimate as an entry owned by the user.
type MealWriter interface {
	CreateEntry(userID uint, foodName string, calories int, ateAt time.Time) (*models.MealEntry, error)
	SetPhotoURL(entryID uint, url string) error
}

// CaptureService runs the photo-to-meal-log flow: analyze the image,
// estimate calories from the top concept, persist the entry. Each
// invocation is self-contained; concurrent invocations share nothing
// but the read-only calorie table.
type CaptureService struct {
	vision VisionAnalyzer
	meals  MealWriter
	hub    *RealtimeHub

	// uploadPhoto stores the captured image and returns its public URL.
	// Optional; nil disables photo storage.
	uploadPhoto func(base64Data, prefix string) (string, error)
}

func NewCaptureService(vision VisionAnalyzer, meals MealWriter, hub *RealtimeHub, uploadPhoto func(string, string) (string, error)) *CaptureService {
	return &CaptureService{vision: vision, meals: meals, hub: hub, uploadPhoto: uploadPhoto}
}

// LogMealFromImage is the one caller-facing operation: given a user and
// a captured image, either a MealEntry comes back or an error carrying
// one of ErrVision, ErrValidation, ErrPersistence. Persistence happens
// only after a successful estimate, so a vision failure never leaves a
// partial entry behind. No automatic retry — the caller re-submits.
func (c *CaptureService) LogMealFromImage(userID uint, base64Image string, storePhoto bool) (*models.MealEntry, error) {
	concepts, err := c.vision.AnalyzeFood(base64Image)
	if err != nil {
		return nil, err
	}

	est := EstimateCalories(concepts)

	entry, err := c.meals.CreateEntry(userID, est.FoodName, est.Calories, time.Time{})
	if err != nil {
		return nil, err
	}

	// Past this point the entry exists; photo storage and the realtime
	// notification are best-effort extras.
	if storePhoto && c.uploadPhoto != nil {
		url, err := c.uploadPhoto(base64Image, fmt.Sprintf("meals/%d", userID))
		if err != nil {
			log.Printf("capture: photo upload failed for entry %d: %v", entry.ID, err)
		} else if err := c.meals.SetPhotoURL(entry.ID, url); err != nil {
			log.Printf("capture: photo url update failed for entry %d: %v", entry.ID, err)
		} else {
			entry.PhotoURL = url
		}
	}

	if c.hub != nil {
		c.hub.Broadcast(userID, "meal_logged", entry)
	}

	return entry, nil
}
