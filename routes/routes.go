package routes

import (
	"github.com/JPF032/Livora-Up-sub001/config"
	"github.com/JPF032/Livora-Up-sub001/controllers"
	"github.com/JPF032/Livora-Up-sub001/middlewares"
	"github.com/JPF032/Livora-Up-sub001/services"
	"github.com/JPF032/Livora-Up-sub001/utils"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	mealLog := services.NewMealLogService(config.DB)
	capture := services.NewCaptureService(
		services.NewClarifaiService(),
		mealLog,
		hub,
		utils.UploadBase64ImageToS3,
	)

	mealCtl := controllers.NewMealController(capture, mealLog)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Protected meal routes
	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("/photo", mealCtl.LogMealFromPhoto)
		meals.POST("", mealCtl.LogMeal)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/summary", mealCtl.DailySummary)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/meals", rtCtl.MealsWS)
	}

	return r
}
