package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/fitplan/internal/api"
	"alcyxob/fitplan/internal/cache"
	"alcyxob/fitplan/internal/config"
	"alcyxob/fitplan/internal/generator"
	"alcyxob/fitplan/internal/logger"
	"alcyxob/fitplan/internal/observability"
	"alcyxob/fitplan/internal/repository/mongo"
	"alcyxob/fitplan/internal/repository/sqlite"
	"alcyxob/fitplan/internal/scheduler"
	"alcyxob/fitplan/internal/service"
	"alcyxob/fitplan/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title Fitplan API
// @version 1.0
// @description Personalized weekly workout plans generated from a fitness questionnaire.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("could not load config: " + err.Error())
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		panic("could not build logger: " + err.Error())
	}
	defer log.Sync()
	log.Info("Starting fitplan server", "address", cfg.Server.Address, "mode", cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Tracing ---
	shutdownTracing, err := observability.InitTracing(ctx, log, cfg.Tracing)
	if err != nil {
		log.Fatal("Could not initialize tracing", "error", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("Tracer shutdown failed", "error", err)
		}
	}()

	// --- MongoDB: users and plans ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatal("Could not connect to MongoDB", "error", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Error("Failed to disconnect MongoDB", "error", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
		log.Fatal("Could not ensure indexes", "error", err)
	}
	log.Info("Database connection established", "database", cfg.Database.Name)

	// --- SQLite: exercise catalog ---
	catalogDB, err := sqlite.Open(cfg.Catalog.Path, cfg.Log.Mode != "prod")
	if err != nil {
		log.Fatal("Could not open exercise catalog", "path", cfg.Catalog.Path, "error", err)
	}
	defer func() { _ = sqlite.Close(catalogDB) }()
	catalog := cache.NewCachedCatalog(sqlite.NewCatalogStore(catalogDB), cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)

	// --- Plan cache ---
	var planCache cache.PlanCache = cache.NoopPlanCache{}
	if cfg.Redis.Addr != "" {
		planCache, err = cache.NewRedisPlanCache(log, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.PlanTTL,
		})
		if err != nil {
			log.Fatal("Could not connect to Redis", "addr", cfg.Redis.Addr, "error", err)
		}
	} else {
		log.Info("Redis not configured; plan cache disabled")
	}
	defer func() { _ = planCache.Close() }()

	// --- Export storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(ctx, log, cfg.S3)
		if err != nil {
			log.Fatal("Failed to initialize S3 storage", "error", err)
		}
	} else {
		log.Info("S3 bucket not configured; plan export disabled")
	}

	// --- Services ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	planRepo := mongo.NewMongoWorkoutPlanRepository(appDB)

	authService, err := service.NewAuthService(log, userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal("Invalid auth configuration", "error", err)
	}
	gen := generator.New(catalog, generator.WithSeed(cfg.Generator.Seed))
	workoutService := service.NewWorkoutService(log, userRepo, planRepo, gen, service.WorkoutServiceConfig{
		Cache:       planCache,
		Storage:     fileStorage,
		PresignTTL:  cfg.S3.PresignTTL,
		Concurrency: cfg.Scheduler.Concurrency,
	})

	// --- Weekly regeneration ---
	sched, err := scheduler.New(log, workoutService, cfg.Scheduler.Spec)
	if err != nil {
		log.Fatal("Invalid scheduler configuration", "error", err)
	}
	if cfg.Scheduler.Enabled {
		sched.Start()
	}
	defer sched.Stop()

	// --- HTTP ---
	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(api.Deps{
		Log:            log,
		JWTSecret:      authService.GetJWTSecret(),
		CORSOrigins:    cfg.Server.CORSOrigins,
		ServiceName:    cfg.Tracing.ServiceName,
		AuthService:    authService,
		ProfileService: service.NewProfileService(log, userRepo),
		WorkoutService: workoutService,
		CatalogService: service.NewCatalogService(catalog),
		Regenerator:    sched,
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("Server listening", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ListenAndServe failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server exiting")
}
