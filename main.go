package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectplatform/config"
	"connectplatform/database"
	availabilityRepoPkg "connectplatform/database/repository/availability"
	bookingRepoPkg "connectplatform/database/repository/booking"
	catalogRepoPkg "connectplatform/database/repository/catalog"
	paymentRepoPkg "connectplatform/database/repository/payment"
	profileRepoPkg "connectplatform/database/repository/profile"
	sessionRepoPkg "connectplatform/database/repository/session"
	"connectplatform/handlers"
	"connectplatform/routes"
	availabilitySvc "connectplatform/services/availability"
	bookingSvc "connectplatform/services/booking"
	catalogSvc "connectplatform/services/catalog"
	meetingSvc "connectplatform/services/meeting"
	paymentSvc "connectplatform/services/payment"
	profileSvc "connectplatform/services/profile"
	sessionSvc "connectplatform/services/session"
	uploadSvc "connectplatform/services/upload"
	"connectplatform/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAWS()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// repositories.
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// services.
	profileService := &profileSvc.DefaultProfileService{Repo: profileRepo}
	catalogService := &catalogSvc.DefaultCatalogService{
		Repo:  catalogRepo,
		Cache: utils.GetCacheClient(),
	}
	availabilityService := &availabilitySvc.DefaultAvailabilityService{Repo: availabilityRepo}
	bookingService := &bookingSvc.DefaultBookingService{
		Availability: availabilityRepo,
		Bookings:     bookingRepo,
		Sessions:     sessionRepo,
	}
	sessionService := &sessionSvc.DefaultSessionService{Repo: sessionRepo}
	meetingService := &meetingSvc.DefaultMeetingService{
		Chime:       utils.GetChimeClient(),
		Sessions:    sessionRepo,
		Profiles:    profileRepo,
		MediaRegion: config.AppConfig.MediaRegion,
	}
	paymentService := &paymentSvc.DefaultPaymentService{
		Repo:       paymentRepo,
		NewGateway: paymentSvc.NewRazorpayGateway,
	}
	uploadService := &uploadSvc.DefaultUploadService{
		Presigner: utils.GetS3Presigner(),
		Bucket:    config.AppConfig.UploadBucket,
		Region:    config.AppConfig.AWSRegion,
	}

	handlerBundle := handlers.NewHandlerBundle(
		profileService,
		catalogService,
		availabilityService,
		bookingService,
		sessionService,
		meetingService,
		paymentService,
		uploadService,
	)

	router := routes.SetupRouter(handlerBundle, config.AppConfig.MaxRequestsPerMin)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
