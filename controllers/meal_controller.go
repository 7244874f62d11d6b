package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/JPF032/Livora-Up-sub001/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Capture *services.CaptureService
	Meals   *services.MealLogService
}

func NewMealController(capture *services.CaptureService, meals *services.MealLogService) *MealController {
	return &MealController{Capture: capture, Meals: meals}
}

// POST /meals/photo  { "image_base64": "data:…", "store_photo": true }
func (mc *MealController) LogMealFromPhoto(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
		StorePhoto  bool   `json:"store_photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	userID := c.GetUint("userID")

	entry, err := mc.Capture.LogMealFromImage(userID, req.ImageBase64, req.StorePhoto)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrVision):
			status = http.StatusBadGateway
		case errors.Is(err, services.ErrValidation):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// POST /meals  { "food_name": "pizza", "calories": 300, "ate_at": "…" }
func (mc *MealController) LogMeal(c *gin.Context) {
	var req struct {
		FoodName string    `json:"food_name" binding:"required"`
		Calories int       `json:"calories"`
		AteAt    time.Time `json:"ate_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	userID := c.GetUint("userID")

	entry, err := mc.Meals.CreateEntry(userID, req.FoodName, req.Calories, req.AteAt)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /meals[?limit=N]
func (mc *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		entries, err := mc.Meals.ListRecentEntries(userID, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entries)
		return
	}

	entries, err := mc.Meals.ListEntries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /meals/summary?date=2025-06-01 (defaults to today)
func (mc *MealController) DailySummary(c *gin.Context) {
	userID := c.GetUint("userID")

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	summary, err := mc.Meals.Summary(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
