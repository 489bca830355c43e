// File: deltaclinic/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deltaclinic/config"
	"deltaclinic/database"
	appointmentRepo "deltaclinic/database/repository/appointment"
	bookingRepo "deltaclinic/database/repository/booking"
	doctorRepo "deltaclinic/database/repository/doctor"
	paymentRepo "deltaclinic/database/repository/payment"
	userRepo "deltaclinic/database/repository/user"
	"deltaclinic/handlers"
	"deltaclinic/middleware"
	"deltaclinic/routes"
	"deltaclinic/services/access"
	"deltaclinic/services/availability"
	"deltaclinic/services/booking"
	"deltaclinic/services/doctor"
	"deltaclinic/services/payment"
	"deltaclinic/services/user"
	"deltaclinic/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.AppConfig.AccessTokenSecret == "" {
		logger.Fatal("main: ACCESS_TOKEN_SECRET must be set")
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := database.Connect(rootCtx); err != nil {
		logger.Fatal("main: database connection failed", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))

	if err := utils.InitRoleCache(rootCtx); err != nil {
		logger.Warn("main: role cache disabled", zap.Error(err))
	}

	stripe.Key = config.AppConfig.StripeSecretKey

	// repositories.
	db := database.Database()
	optionRepo := appointmentRepo.NewMongoAppointmentOptionRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	users := userRepo.NewMongoUserRepo(db)
	doctors := doctorRepo.NewMongoDoctorRepo(db)
	payments := paymentRepo.NewMongoPaymentRepo(db)

	for name, ensure := range map[string]func(context.Context) error{
		"booking": bookings.EnsureIndexes,
		"user":    users.EnsureIndexes,
		"doctor":  doctors.EnsureIndexes,
	} {
		if err := ensure(rootCtx); err != nil {
			logger.Error("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}

	// services.
	var roleCache access.RoleCache
	if utils.RoleCacheClient != nil {
		roleCache = access.NewRedisRoleCache(utils.RoleCacheClient, config.AppConfig.RoleCacheTTL)
	}
	authorizer := access.NewAuthorizer(users, roleCache, logger)
	tokens := utils.NewTokenIssuer(config.AppConfig.AccessTokenSecret, config.AppConfig.TokenTTL)

	availabilityService := &availability.DefaultAvailabilityService{Options: optionRepo, Bookings: bookings}
	bookingService := &booking.DefaultBookingService{Repo: bookings, Logger: logger}
	userService := &user.DefaultUserService{Repo: users, RoleCache: roleCache, Logger: logger}
	doctorService := &doctor.DefaultDoctorService{Repo: doctors}
	paymentService := &payment.DefaultPaymentService{
		Gateway:  payment.StripeGateway{},
		Repo:     payments,
		Bookings: bookingService,
		Logger:   logger,
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	utils.StartHealthMonitor(rootCtx, time.Minute, database.MongoClient, utils.RoleCacheClient)

	handlerBundle := &handlers.HandlerBundle{
		Tokens:      tokens,
		Authorizer:  authorizer,
		Metrics:     middleware.NewHTTPMetrics(registry),
		Appointment: handlers.NewAppointmentHandler(availabilityService),
		Booking:     handlers.NewBookingHandler(bookingService),
		Payment:     handlers.NewPaymentHandler(paymentService),
		Auth:        handlers.NewAuthHandler(userService, tokens),
		User:        handlers.NewUserHandler(userService),
		Doctor:      handlers.NewDoctorHandler(doctorService),
		Health:      handlers.NewHealthHandler(utils.GetHealthStatus),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, config.AllowedOrigins(), registry)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + config.AppConfig.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("delta-clinic server is running on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := utils.CloseRoleCache(); err != nil {
		logger.Error("main: failed to close role cache", zap.Error(err))
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Error("main: failed to disconnect database", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
