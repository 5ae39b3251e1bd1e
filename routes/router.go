package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/desafiofire/api/config"
	"github.com/desafiofire/api/controllers"
	"github.com/desafiofire/api/middleware"
	"github.com/desafiofire/api/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-HOTMART-HOTTOK", "h-hotmart-hook-token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Record PV after each request
	r.Use(middleware.PageViewRecorder(db))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	challengeController := controllers.NewChallengeController(db)
	achievementController := controllers.NewAchievementController(db)
	webhookController := controllers.NewWebhookController(db)
	adminController := controllers.NewAdminController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.PATCH("/profile", middleware.AuthRequired(), authController.UpdateProfile)
	authGroup.POST("/change-password", middleware.AuthRequired(), authController.ChangePassword)

	// Member surface: only ACTIVE accounts get at the course content.
	member := api.Group("")
	member.Use(middleware.AuthRequired(), middleware.ActiveRequired(db))

	challengeGroup := member.Group("/challenge")
	challengeGroup.GET("/days", challengeController.ListDays)
	challengeGroup.GET("/days/:number", challengeController.GetDay)
	challengeGroup.GET("/current", challengeController.CurrentDay)
	challengeGroup.POST("/tasks/:id/complete", challengeController.CompleteTask)
	challengeGroup.DELETE("/tasks/:id/complete", challengeController.UncompleteTask)
	challengeGroup.GET("/days/:number/note", challengeController.GetNote)
	challengeGroup.PUT("/days/:number/note", challengeController.SaveNote)

	member.GET("/library", challengeController.ListResources)
	member.GET("/achievements", achievementController.GetAchievements)

	// Payment provider deliveries are unauthenticated but rate limited and
	// token checked inside the handler.
	webhooks := api.Group("/webhooks")
	webhooks.Use(middleware.RateLimitMiddleware())
	webhooks.POST("/hotmart", webhookController.HandleHotmart)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	admin.GET("/users", adminController.ListUsers)
	admin.GET("/users/:id", adminController.GetUser)
	admin.POST("/users", adminController.CreateUser)
	admin.PATCH("/users/:id", adminController.UpdateUser)
	admin.PATCH("/users/:id/status", adminController.UpdateUserStatus)
	admin.PATCH("/users/:id/role", adminController.UpdateUserRole)
	admin.DELETE("/users/:id", adminController.DeleteUser)

	admin.GET("/stats", adminController.GetStats)
	admin.GET("/activity", adminController.GetActivity)
	admin.GET("/webhook-events", adminController.GetWebhookEvents)

	admin.POST("/days", adminController.CreateDay)
	admin.PUT("/days/:id", adminController.UpdateDay)
	admin.DELETE("/days/:id", adminController.DeleteDay)
	admin.POST("/tasks", adminController.CreateTask)
	admin.PUT("/tasks/:id", adminController.UpdateTask)
	admin.DELETE("/tasks/:id", adminController.DeleteTask)
	admin.POST("/resources", adminController.CreateResource)
	admin.PUT("/resources/:id", adminController.UpdateResource)
	admin.DELETE("/resources/:id", adminController.DeleteResource)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
