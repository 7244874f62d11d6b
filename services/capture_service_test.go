package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/JPF032/Livora-Up-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the vision model and the meal store, in the
// spirit of hand-written interface mocks: no network, no database, and
// full control over failure injection.

type stubVision struct {
	concepts []FoodConcept
	err      error
}

func (v *stubVision) AnalyzeFood(string) ([]FoodConcept, error) {
	return v.concepts, v.err
}

type memWriter struct {
	mu      sync.Mutex
	entries []models.MealEntry
	err     error
}

func (w *memWriter) CreateEntry(userID uint, foodName string, calories int, ateAt time.Time) (*models.MealEntry, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	entry := models.MealEntry{UserID: userID, FoodName: foodName, Calories: calories, AteAt: ateAt}
	entry.ID = uint(len(w.entries) + 1)
	w.entries = append(w.entries, entry)
	return &entry, nil
}

func (w *memWriter) SetPhotoURL(entryID uint, url string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.entries {
		if w.entries[i].ID == entryID {
			w.entries[i].PhotoURL = url
		}
	}
	return nil
}

func TestLogMealFromImageEndToEnd(t *testing.T) {
	vision := &stubVision{concepts: []FoodConcept{{Name: "Burger", Confidence: 0.87}}}
	store := &memWriter{}
	svc := NewCaptureService(vision, store, nil, nil)

	entry, err := svc.LogMealFromImage(1, "AAAB", false)
	require.NoError(t, err)
	assert.Equal(t, uint(1), entry.UserID)
	assert.Equal(t, "burger", entry.FoodName)
	assert.Equal(t, 500, entry.Calories)
	require.Len(t, store.entries, 1)
}

func TestLogMealFromImageVisionFailureWritesNothing(t *testing.T) {
	vision := &stubVision{err: fmt.Errorf("%w: status 502", ErrVision)}
	store := &memWriter{}
	svc := NewCaptureService(vision, store, nil, nil)

	_, err := svc.LogMealFromImage(1, "AAAB", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVision))
	assert.Empty(t, store.entries)
}

func TestLogMealFromImageWriterErrorPassesThrough(t *testing.T) {
	vision := &stubVision{concepts: []FoodConcept{{Name: "pizza", Confidence: 0.9}}}
	store := &memWriter{err: fmt.Errorf("%w", ErrPersistence)}
	svc := NewCaptureService(vision, store, nil, nil)

	_, err := svc.LogMealFromImage(1, "AAAB", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPersistence))
}

func TestLogMealFromImageNoConceptsLogsUnknown(t *testing.T) {
	vision := &stubVision{concepts: []FoodConcept{}}
	store := &memWriter{}
	svc := NewCaptureService(vision, store, nil, nil)

	entry, err := svc.LogMealFromImage(7, "AAAB", false)
	require.NoError(t, err)
	assert.Equal(t, "unknown", entry.FoodName)
	assert.Equal(t, DefaultCalories, entry.Calories)
}

func TestLogMealFromImagePhotoUploadIsBestEffort(t *testing.T) {
	vision := &stubVision{concepts: []FoodConcept{{Name: "sushi", Confidence: 0.8}}}
	store := &memWriter{}
	svc := NewCaptureService(vision, store, nil, func(string, string) (string, error) {
		return "", errors.New("bucket unreachable")
	})

	entry, err := svc.LogMealFromImage(2, "AAAB", true)
	require.NoError(t, err)
	assert.Empty(t, entry.PhotoURL)
	require.Len(t, store.entries, 1)
}

func TestLogMealFromImagePhotoURLBackfill(t *testing.T) {
	vision := &stubVision{concepts: []FoodConcept{{Name: "salad", Confidence: 0.8}}}
	store := &memWriter{}
	svc := NewCaptureService(vision, store, nil, func(_ string, prefix string) (string, error) {
		return "https://cdn.example/" + prefix + "/photo.jpg", nil
	})

	entry, err := svc.LogMealFromImage(3, "AAAB", true)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/meals/3/photo.jpg", entry.PhotoURL)
	assert.Equal(t, entry.PhotoURL, store.entries[0].PhotoURL)
}

func TestConcurrentInvocationsStayIndependent(t *testing.T) {
	store := &memWriter{}

	var wg sync.WaitGroup
	for _, uid := range []uint{1, 2} {
		wg.Add(1)
		go func(uid uint) {
			defer wg.Done()
			vision := &stubVision{concepts: []FoodConcept{{Name: "rice", Confidence: 0.7}}}
			svc := NewCaptureService(vision, store, nil, nil)
			entry, err := svc.LogMealFromImage(uid, "AAAB", false)
			assert.NoError(t, err)
			assert.Equal(t, uid, entry.UserID)
		}(uid)
	}
	wg.Wait()

	require.Len(t, store.entries, 2)
	seen := map[uint]int{}
	for _, e := range store.entries {
		seen[e.UserID]++
	}
	assert.Equal(t, map[uint]int{1: 1, 2: 1}, seen)
}
