package services

import (
	"fmt"
	"log"
	"time"

	"github.com/JPF032/Livora-Up-sub001/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type MealLogService struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewMealLogService(db *gorm.DB) *MealLogService {
	return &MealLogService{db: db, validate: validator.New()}
}

// entryInput exists only to carry validation tags; the persisted model
// stays tag-free of validator concerns.
type entryInput struct {
	UserID   uint   `validate:"required"`
	FoodName string `validate:"required"`
	Calories int    `validate:"gte=0"`
}

// CreateEntry appends one meal entry for the user. Every call creates a
// new, distinct row — identical content is not deduplicated. A zero
// ateAt defaults to the write time.
func (s *MealLogService) CreateEntry(userID uint, foodName string, calories int, ateAt time.Time) (*models.MealEntry, error) {
	in := entryInput{UserID: userID, FoodName: foodName, Calories: calories}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if ateAt.IsZero() {
		ateAt = time.Now()
	}

	entry := &models.MealEntry{
		UserID:   userID,
		FoodName: foodName,
		Calories: calories,
		AteAt:    ateAt,
	}
	if err := s.db.Create(entry).Error; err != nil {
		log.Printf("meal log: create failed for user %d: %v", userID, err)
		return nil, fmt.Errorf("%w", ErrPersistence)
	}
	return entry, nil
}

// SetPhotoURL backfills the stored photo location on an entry. Called
// best-effort after the upload finishes; a failure here never unwinds
// the already-persisted entry.
func (s *MealLogService) SetPhotoURL(entryID uint, url string) error {
	return s.db.Model(&models.MealEntry{}).
		Where("id = ?", entryID).
		Update("photo_url", url).Error
}

func (s *MealLogService) ListEntries(userID uint) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *MealLogService) ListRecentEntries(userID uint, limit int) ([]models.MealEntry, error) {
	if limit <= 0 {
		limit = 3
	}
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

type DailySummary struct {
	Date          string `json:"date"`
	TotalCalories int    `json:"total_calories"`
	EntryCount    int64  `json:"entry_count"`
}

// Summary totals one calendar day of entries ([day, day+24h)).
func (s *MealLogService) Summary(userID uint, day time.Time) (*DailySummary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	var row struct {
		Total int
		Count int64
	}
	err := s.db.Model(&models.MealEntry{}).
		Select("COALESCE(SUM(calories),0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &DailySummary{
		Date:          from.Format("2006-01-02"),
		TotalCalories: row.Total,
		EntryCount:    row.Count,
	}, nil
}
