package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	db := config.DB

	rek, err := services.NewRekognitionService()
	if err != nil {
		utils.Logger().Warnw("rekognition unavailable, photo recognition disabled", "error", err)
	}

	clientSvc := services.NewClientService(db)
	foodSvc := services.NewFoodService(db, rek)
	dietSvc := services.NewDietService(db)
	templateSvc := services.NewTemplateService(db)
	dashboardSvc := services.NewDashboardService(db)
	suggestionSvc := services.NewSuggestionService(db)

	clientCtl := controllers.NewClientController(clientSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	dietCtl := controllers.NewDietController(dietSvc)
	templateCtl := controllers.NewTemplateController(templateSvc, dietSvc)
	dashboardCtl := controllers.NewDashboardController(dashboardSvc)
	suggestionCtl := controllers.NewSuggestionController(suggestionSvc)
	shareCtl := controllers.NewShareController(dietSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Public share view, token is the only credential
	r.GET("/share/:shareId", shareCtl.View)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	clients := r.Group("/clients")
	clients.Use(middlewares.AuthMiddleware())
	{
		clients.POST("", clientCtl.Create)
		clients.GET("", clientCtl.List)
		clients.GET("/:id", clientCtl.Get)
		clients.PUT("/:id", clientCtl.Update)
		clients.DELETE("/:id", clientCtl.Delete)
		clients.GET("/:id/health", clientCtl.Health)
		clients.POST("/:id/photo", controllers.UploadClientPhoto)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.POST("", foodCtl.Create)
		foods.GET("", foodCtl.List)
		foods.GET("/:id", foodCtl.Get)
		foods.PUT("/:id", foodCtl.Update)
		foods.DELETE("/:id", foodCtl.Delete)
		foods.POST("/recognize", foodCtl.Recognize)
	}

	diets := r.Group("/diets")
	diets.Use(middlewares.AuthMiddleware())
	{
		diets.POST("", dietCtl.Create)
		diets.GET("", dietCtl.List)
		diets.GET("/:id", dietCtl.Get)
		diets.PUT("/:id", dietCtl.Update)
		diets.DELETE("/:id", dietCtl.Delete)

		diets.POST("/:id/entries", dietCtl.AddEntry)
		diets.DELETE("/:id/entries/:entryId", dietCtl.RemoveEntry)

		diets.PUT("/:id/goal", dietCtl.UpsertGoal)
		diets.DELETE("/:id/goal", dietCtl.ClearGoal)

		diets.POST("/:id/slots", dietCtl.AddSlot)
		diets.PUT("/:id/slots/:slotId", dietCtl.UpdateSlot)
		diets.DELETE("/:id/slots/:slotId", dietCtl.RemoveSlot)

		diets.POST("/:id/supplements", dietCtl.AddSupplement)
		diets.DELETE("/:id/supplements/:supplementId", dietCtl.RemoveSupplement)

		diets.GET("/:id/summary", dietCtl.Summary)
		diets.POST("/:id/share", dietCtl.Share)
		diets.POST("/:id/convert-to-template", templateCtl.ConvertFromDiet)
		diets.GET("/:id/suggestions", suggestionCtl.ForDietDay)
	}

	templates := r.Group("/templates")
	templates.Use(middlewares.AuthMiddleware())
	{
		templates.POST("", templateCtl.Create)
		templates.GET("", templateCtl.List)
		templates.GET("/:id", templateCtl.Get)
		templates.PUT("/:id", templateCtl.Update)
		templates.DELETE("/:id", templateCtl.Delete)
		templates.POST("/:id/assign", templateCtl.Assign)
		templates.GET("/:id/stats", templateCtl.Stats)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/overview", dashboardCtl.Overview)
		dashboard.GET("/diets/:id/weekly", dashboardCtl.DietWeeklyOverview)
	}

	notifications := r.Group("/notifications")
	notifications.Use(middlewares.AuthMiddleware())
	{
		notifications.GET("", controllers.ListNotifications)
		notifications.POST("/:id/read", controllers.MarkNotificationRead)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", realtimeCtl.EventsWS)
	}

	if push != nil {
		deviceCtl := controllers.NewDeviceController(push)
		devCtl := controllers.NewDevController(push)

		devices := r.Group("/devices")
		devices.Use(middlewares.AuthMiddleware())
		{
			devices.POST("/register", deviceCtl.Register)
		}

		dev := r.Group("/dev")
		dev.Use(middlewares.AuthMiddleware())
		{
			dev.POST("/push-test", devCtl.PushTest)
		}
	}

	return r
}
