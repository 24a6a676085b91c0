package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/yungbote/coachie-backend/internal/handlers"
  "github.com/yungbote/coachie-backend/internal/logger"
  "github.com/yungbote/coachie-backend/internal/middleware"
)

type RouterConfig struct {
  Log               *logger.Logger
  ProfileHandler    *handlers.ProfileHandler
  CheckinHandler    *handlers.CheckinHandler
  PlanHandler       *handlers.PlanHandler
  SummaryHandler    *handlers.SummaryHandler
  SmsHandler        *handlers.SmsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.New()
  router.Use(gin.Recovery())
  router.Use(middleware.RequestLogger(cfg.Log))
  router.Use(otelgin.Middleware("coachie"))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)

  api := router.Group("/api")
  {
    // Profiles
    api.POST("/profiles", cfg.ProfileHandler.CreateProfile)
    api.GET("/profiles/:id", cfg.ProfileHandler.GetProfile)
    api.PATCH("/profiles/:id/settings", cfg.ProfileHandler.UpdateSettings)
    // Daily check-ins
    api.POST("/checkins", cfg.CheckinHandler.UpsertCheckin)
    api.GET("/checkins", cfg.CheckinHandler.ListCheckins)
    // Food log
    api.POST("/food-entries", cfg.CheckinHandler.AddFoodEntry)
    api.GET("/food-entries", cfg.CheckinHandler.ListFoodEntries)
    api.DELETE("/food-entries/:id", cfg.CheckinHandler.DeleteFoodEntry)
    // Coaching flows
    api.POST("/generate-initial-plan", cfg.PlanHandler.GenerateInitialPlan)
    api.POST("/generate-weekly-summary", cfg.SummaryHandler.GenerateWeeklySummary)
    api.POST("/weekly-review", cfg.SummaryHandler.SubmitWeeklyReview)
    // SMS
    api.POST("/sms/webhook", cfg.SmsHandler.InboundWebhook)
    api.POST("/sms/checkin-cron", cfg.SmsHandler.RunCheckinCron)
  }

  return router
}
