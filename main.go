package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"taskhive/config"
	"taskhive/cron"
	"taskhive/database"
	bookingRepo "taskhive/database/repository/booking"
	profileRepo "taskhive/database/repository/profile"
	reviewRepo "taskhive/database/repository/review"
	taskRepo "taskhive/database/repository/task"
	"taskhive/handlers"
	"taskhive/routes"
	"taskhive/services/booking"
	"taskhive/services/catalog"
	"taskhive/services/matching"
	"taskhive/services/notification"
	"taskhive/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()
	utils.FirebaseInit()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	profRepo := profileRepo.NewMongoProfileRepo()
	tskRepo := taskRepo.NewMongoTaskRepo()
	revRepo := reviewRepo.NewMongoReviewRepo()

	// services.
	cat := catalog.Default()
	directory := matching.DefaultDirectory()
	matchingService := matching.NewDefaultMatchingService(cat, directory)
	notificationService := notification.NewFCMNotificationService(profRepo, logger)
	expiryScheduler := cron.NewExpiryScheduler()
	defer expiryScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:     bkRepo,
		Profiles: profRepo,
		Tasks:    tskRepo,
		Catalog:  cat,
		Notifier: notificationService,
		Expiry:   expiryScheduler,
		Logger:   logger,
	}
	sessionService := &booking.DefaultSessionService{
		Catalog:  cat,
		Matching: matchingService,
	}

	cron.InitExpiryWorker(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Profiles: handlers.NewProfileHandler(profRepo),
		Services: handlers.NewServiceHandler(cat),
		AI:       handlers.NewAIHandler(cat, matchingService, sessionService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Tasks:    handlers.NewTaskHandler(tskRepo),
		Reviews:  handlers.NewReviewHandler(revRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

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
