package main

import (
  "context"
  "fmt"
  "os"
  "github.com/yungbote/coachie-backend/internal/clients/openai"
  "github.com/yungbote/coachie-backend/internal/clients/twilio"
  "github.com/yungbote/coachie-backend/internal/db"
  "github.com/yungbote/coachie-backend/internal/handlers"
  "github.com/yungbote/coachie-backend/internal/logger"
  "github.com/yungbote/coachie-backend/internal/observability"
  "github.com/yungbote/coachie-backend/internal/repos"
  "github.com/yungbote/coachie-backend/internal/scheduler"
  "github.com/yungbote/coachie-backend/internal/server"
  "github.com/yungbote/coachie-backend/internal/services"
  "github.com/yungbote/coachie-backend/internal/utils"
)

func main() {
  ctx := context.Background()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Tracing
  shutdownOtel := observability.InitOTel(ctx, log, observability.OtelConfig{
    Environment: os.Getenv("APP_ENV"),
  })
  defer shutdownOtel(ctx)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  profileRepo := repos.NewClientProfileRepo(thePG, log)
  checkinRepo := repos.NewDailyCheckinRepo(thePG, log)
  sessionRepo := repos.NewSmsSessionRepo(thePG, log)
  reviewRepo := repos.NewWeeklyReviewRepo(thePG, log)
  foodRepo := repos.NewFoodEntryRepo(thePG, log)
  auditRepo := repos.NewAICallLogRepo(thePG, log)

  // Clients
  log.Info("Setting up Clients from main...")
  openaiClient, err := openai.NewClient(log)
  if err != nil {
    log.Error("Could not init OpenAI client", "error", err)
    os.Exit(1)
  }
  twilioClient, err := twilio.NewFromEnv(log)
  if err != nil {
    log.Error("Could not init Twilio client", "error", err)
    os.Exit(1)
  }

  // Services
  log.Info("Setting up Services from main...")
  profileService := services.NewProfileService(profileRepo, log)
  checkinService := services.NewCheckinService(checkinRepo, foodRepo, log)
  smsCheckinService := services.NewSmsCheckinService(profileRepo, checkinRepo, sessionRepo, twilioClient, log)
  planService := services.NewPlanService(profileRepo, auditRepo, openaiClient, log)
  summaryService := services.NewSummaryService(profileRepo, checkinRepo, reviewRepo, auditRepo, openaiClient, log)

  // Scheduler
  log.Info("Setting up Scheduler from main...")
  sched := scheduler.NewService(smsCheckinService, log)
  if err := sched.Start(ctx); err != nil {
    log.Error("Scheduler start failed", "error", err)
    os.Exit(1)
  }
  defer sched.Stop()

  // Handlers
  log.Info("Setting up Handlers from main...")
  profileHandler := handlers.NewProfileHandler(log, profileService)
  checkinHandler := handlers.NewCheckinHandler(log, checkinService)
  planHandler := handlers.NewPlanHandler(log, planService)
  summaryHandler := handlers.NewSummaryHandler(log, summaryService)
  smsHandler := handlers.NewSmsHandler(log, smsCheckinService)

  // Router
  log.Info("Setting up Router from main...")
  router := server.NewRouter(server.RouterConfig{
    Log:               log,
    ProfileHandler:    profileHandler,
    CheckinHandler:    checkinHandler,
    PlanHandler:       planHandler,
    SummaryHandler:    summaryHandler,
    SmsHandler:        smsHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
