package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RajRabadiya018/CarringNanny/config"
	"github.com/RajRabadiya018/CarringNanny/cron"
	"github.com/RajRabadiya018/CarringNanny/database"
	bookingRepoPkg "github.com/RajRabadiya018/CarringNanny/database/repository/booking"
	nannyRepoPkg "github.com/RajRabadiya018/CarringNanny/database/repository/nanny"
	userRepoPkg "github.com/RajRabadiya018/CarringNanny/database/repository/user"
	"github.com/RajRabadiya018/CarringNanny/handlers"
	"github.com/RajRabadiya018/CarringNanny/routes"
	"github.com/RajRabadiya018/CarringNanny/services/admin"
	"github.com/RajRabadiya018/CarringNanny/services/booking"
	"github.com/RajRabadiya018/CarringNanny/services/nanny"
	"github.com/RajRabadiya018/CarringNanny/services/user"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	nannyRepo := nannyRepoPkg.NewMongoNannyRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	nannyService := &nanny.DefaultNannyService{Repo: nannyRepo, Users: userRepo}
	bookingService := booking.NewDefaultBookingService(bookingRepo, nannyRepo, userRepo)

	taskClient := cron.NewTaskClient()
	defer taskClient.Close()

	adminService := &admin.DefaultAdminService{
		Users:               userRepo,
		Nannies:             nannyRepo,
		Bookings:            bookingRepo,
		Tasks:               taskClient,
		NewPricingAuditTask: cron.NewPricingAuditTask,
	}

	// Seed the back-office account before the server accepts traffic.
	cfg := config.AppConfig
	if err := userService.EnsureAdminAccount(cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure admin account: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Users:    handlers.NewUserHandler(userService),
		Nannies:  handlers.NewNannyHandler(nannyService),
		Bookings: handlers.NewBookingHandler(bookingService, logger),
		Admin:    handlers.NewAdminHandler(adminService),
		UserRepo: userRepo,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for queued price audits.
	cron.InitPricingAuditWorker(bookingService)

	// Start the HTTP server.
	port := cfg.AppPort
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
