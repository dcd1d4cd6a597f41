package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"hotelops/internal/config"
	"hotelops/internal/database"
	"hotelops/internal/middleware"
	"hotelops/internal/modules/analytics"
	"hotelops/internal/modules/auth"
	"hotelops/internal/modules/bar"
	"hotelops/internal/modules/booking"
	"hotelops/internal/modules/catalog"
	"hotelops/internal/modules/inventory"
	"hotelops/internal/modules/payment"
	"hotelops/internal/pkg/cache"
	jwtsvc "hotelops/internal/pkg/jwt"
	"hotelops/internal/pkg/mailer"
	"hotelops/internal/repository"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}
	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseDSN, log)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable, caching disabled")
			redisClient = nil
		}
	}
	cacheSvc := cache.New(redisClient, cfg.CachePrefix, cfg.CacheTTL)

	staffRepo := repository.NewStaffRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	barRepo := repository.NewBarRepository(db)

	roomCatalog := catalog.Default()
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	mailQueue := mailer.NewQueue(&mailer.LogSender{Log: log}, log, cfg.MailBuffer)
	defer mailQueue.Close()

	authService := auth.NewService(staffRepo, j, nil, log)
	authHandler := auth.NewHandler(authService)

	catalogHandler := catalog.NewHandler(roomCatalog)

	bookingService := booking.NewService(bookingRepo, inventoryRepo, roomCatalog,
		booking.NewMailNotifier(mailQueue), log)
	bookingHandler := booking.NewHandler(bookingService)

	inventoryService := inventory.NewService(inventoryRepo, roomCatalog, cacheSvc, log)
	inventoryHandler := inventory.NewHandler(inventoryService, bookingService)

	gateway := payment.NewRestGateway(cfg.GatewayBaseURL, cfg.GatewaySecretKey, log)
	paymentService := payment.NewService(paymentRepo, bookingRepo, bookingService, gateway, cfg.Currency, log)
	paymentHandler := payment.NewHandler(paymentService, cfg.GatewaySecretKey)

	barService := bar.NewService(barRepo, log)
	barHandler := bar.NewHandler(barService)

	analyticsService := analytics.NewService(bookingRepo, inventoryRepo, barRepo, cacheSvc, log)
	analyticsHandler := analytics.NewHandler(analyticsService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		inventoryHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterPublicRoutes(v1)

		// staff
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j), middleware.StaffOnly())
		{
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			barHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
		}

		// superadmin
		admin := v1.Group("/")
		admin.Use(middleware.JWTAuth(j), middleware.SuperadminOnly())
		{
			inventoryHandler.RegisterAdminRoutes(admin)
			authHandler.RegisterAdminRoutes(admin)
		}
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}
