package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/api"
	"github.com/Nirnayjain168/Gym-Management/internal/config"
	"github.com/Nirnayjain168/Gym-Management/internal/repository/mongo"
	"github.com/Nirnayjain168/Gym-Management/internal/service"
	"github.com/Nirnayjain168/Gym-Management/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Gym Management Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureCredentialIndexes(ctx, appDB.Collection("credentials"))
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureBillIndexes(ctx, appDB.Collection("bills"))
		mongo.EnsureFeePackageIndexes(ctx, appDB.Collection("feePackages"))
		mongo.EnsureNotificationIndexes(ctx, appDB.Collection("notifications"))
		mongo.EnsureWorkoutPlanIndexes(ctx, appDB.Collection("workoutPlans"))
		mongo.EnsureDietPlanIndexes(ctx, appDB.Collection("dietPlans"))
		mongo.EnsureLogIndexes(ctx, appDB.Collection("logs"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	credentialRepo := mongo.NewMongoCredentialRepository(appDB)
	userRepo := mongo.NewMongoUserRepository(appDB)
	membershipRepo := mongo.NewMongoMembershipRepository(appDB)
	billRepo := mongo.NewMongoBillRepository(appDB)
	feePackageRepo := mongo.NewMongoFeePackageRepository(appDB)
	notificationRepo := mongo.NewMongoNotificationRepository(appDB)
	workoutPlanRepo := mongo.NewMongoWorkoutPlanRepository(appDB)
	dietPlanRepo := mongo.NewMongoDietPlanRepository(appDB)
	logRepo := mongo.NewMongoLogRepository(appDB)

	// --- Initialize Report Archive (optional) ---
	var archive storage.ReportArchive
	if cfg.Archive.Enabled {
		log.Println("Initializing report archive storage...")
		archive, err = storage.NewS3Archive(cfg.Archive)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize report archive: %v", err)
		}
	} else {
		log.Println("Report archive disabled, exports stream to the client only.")
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	audit := service.NewAuditLogger(logRepo)
	authService := service.NewAuthService(credentialRepo, userRepo, audit, cfg.JWT.Secret, cfg.JWT.Expiration)
	adminService := service.NewAdminService(authService, userRepo, membershipRepo, billRepo, feePackageRepo, notificationRepo, workoutPlanRepo, dietPlanRepo, logRepo, audit)
	memberService := service.NewMemberService(userRepo, billRepo, notificationRepo, workoutPlanRepo, dietPlanRepo, audit)
	reportService := service.NewReportService(userRepo, archive, cfg.Archive.Prefix, audit)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, adminService, memberService, reportService, audit)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
