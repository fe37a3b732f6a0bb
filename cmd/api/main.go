package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/summitfg/summit-api/config"
	"github.com/summitfg/summit-api/pkg/ai/llm"
	"github.com/summitfg/summit-api/pkg/api/handlers"
	custommw "github.com/summitfg/summit-api/pkg/api/middleware"
	"github.com/summitfg/summit-api/pkg/assignment"
	"github.com/summitfg/summit-api/pkg/cache"
	"github.com/summitfg/summit-api/pkg/campaign"
	"github.com/summitfg/summit-api/pkg/chat"
	"github.com/summitfg/summit-api/pkg/database"
	"github.com/summitfg/summit-api/pkg/email"
	"github.com/summitfg/summit-api/pkg/inquiry"
	"github.com/summitfg/summit-api/pkg/jobs"
	"github.com/summitfg/summit-api/pkg/leads"
	"github.com/summitfg/summit-api/pkg/logger"
	"github.com/summitfg/summit-api/pkg/metrics"
	custommiddleware "github.com/summitfg/summit-api/pkg/middleware"
	"github.com/summitfg/summit-api/pkg/phone"
	"github.com/summitfg/summit-api/pkg/quiz"
	"github.com/summitfg/summit-api/pkg/resources"
	"github.com/summitfg/summit-api/pkg/users"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // 5 req/min for login
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1)   // slow trickle for signups
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // external capture forms

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "Summit Financial Group API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if err := redisClient.Redis.Ping(c.Request().Context()).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize LLM clients. Either may be absent; every consumer has a
	// deterministic fallback path.
	var openaiClient llm.LLMClient
	if cfg.OpenAIAPIKey != "" {
		openaiClient = llm.NewOpenAIClient(llm.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: time.Duration(cfg.LLMTimeoutSec) * time.Second,
		}, log.Default())
		log.Printf("✅ OpenAI client initialized (model: %s)", cfg.OpenAIModel)
	} else {
		log.Printf("ℹ️  OpenAI disabled (no API key), quiz and campaigns use fallback content")
	}

	var geminiClient llm.LLMClient
	if cfg.GeminiAPIKey != "" {
		geminiClient = llm.NewGeminiClient(llm.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: time.Duration(cfg.LLMTimeoutSec) * time.Second,
		}, log.Default())
	} else {
		// Lead-gen text falls back to OpenAI when Gemini is not configured
		geminiClient = openaiClient
		log.Printf("ℹ️  Gemini disabled (no API key)")
	}

	// Initialize email service
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.SendGridAPIKey, appLogger)

	// Phone normalization
	phoneValidator := phone.NewValidator(cfg.DefaultPhoneRegion)

	// Initialize services
	leadService := leads.NewService(db.DB, phoneValidator)
	assignmentService := assignment.NewService(db.DB)
	quizService := quiz.NewService(db.DB, openaiClient, log.Default())
	chatService := chat.NewService(db.DB)
	inquiryService := inquiry.NewService(db.DB, emailService, phoneValidator, cfg.TeamInbox, log.Default())
	resourceService := resources.NewService(redisClient, log.Default())
	campaignService := campaign.NewService(openaiClient, geminiClient, log.Default())
	userService := users.NewService(db.DB)

	// Initialize cron manager for the daily unassigned lead sweep
	cronManager := jobs.NewCronManager(
		leadService,
		assignmentService,
		emailService,
		prometheusMetrics,
		cfg.FounderEmail,
		log.Default(),
	)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret, cfg.JWTExpirationHours, prometheusMetrics)
	leadHandler := handlers.NewLeadHandler(leadService, assignmentService, prometheusMetrics)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, prometheusMetrics)
	quizHandler := handlers.NewQuizHandler(quizService, prometheusMetrics)
	chatHandler := handlers.NewChatHandler(chatService, prometheusMetrics)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService, prometheusMetrics)
	resourcesHandler := handlers.NewResourcesHandler(resourceService)
	campaignHandler := handlers.NewCampaignHandler(campaignService, prometheusMetrics)
	voiceHandler := handlers.NewVoiceHandler(chatService)

	v1 := e.Group("/api/v1")

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, registerRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
	}

	// Public marketing site routes
	v1.POST("/inquiries", inquiryHandler.CreateInquiry)
	v1.POST("/career-quiz", quizHandler.SubmitQuiz)
	v1.GET("/resources", resourcesHandler.ListResources)
	v1.POST("/leads/webhook", leadHandler.LeadWebhook, webhookRateLimiter.RateLimitMiddleware())
	v1.POST("/voice/transcript", voiceHandler.SubmitTranscript)

	// Chat routes (public, sessions are unauthenticated site visitors)
	chatGroup := v1.Group("/chat")
	{
		chatGroup.POST("/sessions", chatHandler.CreateSession)
		chatGroup.GET("/sessions/:sessionId", chatHandler.GetSession)
		chatGroup.PATCH("/sessions/:sessionId", chatHandler.UpdateSession)
		chatGroup.POST("/sessions/:sessionId/messages", chatHandler.AppendMessage)
		chatGroup.GET("/sessions/:sessionId/messages", chatHandler.GetMessages)
	}

	// Protected routes (require JWT)
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddleware(cfg.JWTSecret))
	{
		// Lead routes
		leadsGroup := protected.Group("/leads")
		{
			leadsGroup.POST("", leadHandler.CreateLead)
			leadsGroup.GET("", leadHandler.ListLeads)
			leadsGroup.GET("/:id", leadHandler.GetLead)
			leadsGroup.PATCH("/:id", leadHandler.UpdateLead)
			leadsGroup.DELETE("/:id", leadHandler.DeleteLead)
		}

		// Assignment rotation
		assignmentGroup := protected.Group("/assignment")
		{
			assignmentGroup.GET("/config", assignmentHandler.GetConfig, custommw.RequireFounder())
			assignmentGroup.PUT("/config", assignmentHandler.UpdateConfig, custommw.RequireFounder())
			assignmentGroup.POST("/next", assignmentHandler.NextOwner)
		}

		// Campaign content generation
		campaignGroup := protected.Group("/campaigns")
		{
			campaignGroup.POST("/email", campaignHandler.GenerateEmailCampaign)
			campaignGroup.POST("/leadgen-text", campaignHandler.GenerateLeadGenText)
		}

		// Inquiry review (founder only)
		protected.GET("/inquiries", inquiryHandler.ListInquiries, custommw.RequireFounder())
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Summit API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: Daily 8AM (unassigned lead sweep)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
