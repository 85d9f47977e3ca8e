package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quickquid/quickquid-api/internal/cache"
	"github.com/quickquid/quickquid-api/internal/config"
	"github.com/quickquid/quickquid-api/internal/events"
	"github.com/quickquid/quickquid-api/internal/handler"
	"github.com/quickquid/quickquid-api/internal/logger"
	"github.com/quickquid/quickquid-api/internal/middleware"
	"github.com/quickquid/quickquid-api/internal/repository"
	"github.com/quickquid/quickquid-api/internal/service"
	"github.com/quickquid/quickquid-api/internal/storage"
)

func main() {
	log := logger.New()

	cfg, err := config.Load(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := storage.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := storage.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to bootstrap schema")
	}
	cancel()

	redis, err := cache.NewClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redis.Close()

	publisher := events.NewPublisher(redis.Client)
	branchCache := cache.NewBranchListCache(redis.Client, 5*time.Minute)

	personRepo := repository.NewPersonRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository(db, accountRepo)

	registrationSvc := service.NewRegistrationService(personRepo, branchRepo, accountRepo, branchCache, publisher)
	transferSvc := service.NewTransferService(accountRepo, transactionRepo, publisher)
	lookupSvc := service.NewLookupService(branchRepo, accountRepo, transactionRepo, branchCache)

	personHandler := handler.NewPersonHandler(registrationSvc)
	bankHandler := handler.NewBankHandler(registrationSvc, lookupSvc)
	accountHandler := handler.NewAccountHandler(registrationSvc)
	transactionHandler := handler.NewTransactionHandler(transferSvc, lookupSvc)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/setup", func(c *gin.Context) {
		if err := storage.EnsureSchema(c.Request.Context(), db); err != nil {
			log := logger.FromContext(c.Request.Context())
			log.Error().Err(err).Msg("schema setup failed")
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create tables")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Successfully created tables"})
	})

	router.POST("/person", personHandler.CreatePerson)
	router.POST("/bank", bankHandler.CreateBranch)
	router.GET("/bank/all", bankHandler.ListBranches)
	router.POST("/account", accountHandler.CreateAccount)
	router.POST("/transaction", transactionHandler.CreateTransaction)
	router.GET("/transaction/account", transactionHandler.ListAccountTransactions)

	log.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
