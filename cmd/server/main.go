// -----------------------------------------------------------------------------
// Rifa-Go API Server
// -----------------------------------------------------------------------------
// Uygulamanın giriş noktası. Sırasıyla:
//  1. Logger ve .env yüklenir
//  2. Migration'lar uygulanır ve Postgres'e bağlanılır
//  3. Redis, cache ve queue driver'ları seçilir
//  4. Servisler, controller'lar ve router kurulur
//  5. Worker ve zamanlanmış temizlik goroutine'leri başlatılır
//  6. HTTP sunucusu graceful shutdown ile ayağa kaldırılır
// -----------------------------------------------------------------------------

package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/biyonik/raffle-pix-api/internal/config"
	"github.com/biyonik/raffle-pix-api/internal/controllers"
	"github.com/biyonik/raffle-pix-api/internal/jobs"
	"github.com/biyonik/raffle-pix-api/internal/middleware"
	"github.com/biyonik/raffle-pix-api/internal/patterns/observer"
	"github.com/biyonik/raffle-pix-api/internal/pix"
	"github.com/biyonik/raffle-pix-api/internal/repositories"
	"github.com/biyonik/raffle-pix-api/internal/router"
	"github.com/biyonik/raffle-pix-api/internal/services"
	"github.com/biyonik/raffle-pix-api/pkg/auth"
	"github.com/biyonik/raffle-pix-api/pkg/cache"
	"github.com/biyonik/raffle-pix-api/pkg/database"
	"github.com/biyonik/raffle-pix-api/pkg/mail"
	"github.com/biyonik/raffle-pix-api/pkg/queue"
)

func main() {
	// 1. Logger
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)
	if os.Getenv("APP_ENV") == "production" {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.DebugLevel)
	}
	log.Info("Rifa-Go API başlatılıyor...")

	// 2. .env ve config
	if err := godotenv.Load(); err != nil {
		log.Warn("⚠️ .env dosyası bulunamadı, sistem ortam değişkenleri kullanılıyor")
	}
	cfg := config.Load()

	stdLogger := stdlog.New(os.Stdout, "", stdlog.LstdFlags)

	// 3. Migration ve Postgres
	if err := database.Migrate(cfg.DB.MigrationsPath, cfg.DB.DSN); err != nil {
		log.WithError(err).Fatal("❌ Migration uygulanamadı")
	}

	db, err := database.Connect(cfg.DB.DSN, database.Options{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		log.WithError(err).Fatal("❌ Veritabanına bağlanılamadı")
	}
	defer db.Close()

	// 4. Redis, cache ve queue
	var redisClient *database.RedisClient
	if cfg.Cache.Driver == "redis" || cfg.Queue.Driver == "redis" {
		redisConfig := database.DefaultRedisConfig()
		redisConfig.Host = cfg.Redis.Host
		redisConfig.Port = cfg.Redis.Port
		redisConfig.Password = cfg.Redis.Password
		redisConfig.DB = cfg.Redis.DB

		redisClient, err = database.NewRedisClient(redisConfig, stdLogger)
		if err != nil {
			log.WithError(err).Fatal("❌ Redis'e bağlanılamadı")
		}
		defer redisClient.Close()
	}

	var appCache cache.Cache
	if cfg.Cache.Driver == "redis" {
		appCache = cache.NewRedisCache(redisClient.Client(), stdLogger, cfg.Cache.Prefix)
	} else {
		appCache = cache.NewMemoryCache(stdLogger)
	}

	var jobQueue queue.Queue
	if cfg.Queue.Driver == "redis" {
		jobQueue = queue.NewRedisQueue(redisClient.Client(), stdLogger, cfg.Cache.Prefix)
	} else {
		jobQueue = queue.NewSyncQueue(stdLogger)
	}

	// 5. Mailer
	mailer := mail.NewSMTPMailer(&mail.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     mail.Address{Email: cfg.Mail.FromAddress, Name: cfg.App.Name},
	}, stdLogger)

	// 6. Job registry: worker'ın payload'dan instance üretebilmesi için
	queue.RegisterJob("*jobs.PaymentConfirmationJob", func() queue.Job {
		return jobs.NewPaymentConfirmationJob(mailer, cfg.Mail.FromAddress, cfg.App.Name)
	})

	// 7. Observer'lar
	eventPublisher := observer.NewEventPublisher()
	eventPublisher.Attach(&observer.LoggingObserver{})
	eventPublisher.Attach(observer.NewStatsObserver(appCache))

	// 8. Repository'ler, gateway ve servisler
	ticketRepo := repositories.NewTicketRepository(db)
	raffleRepo := repositories.NewRaffleRepository(db)
	gateway := pix.NewClient(cfg.Pix.BaseURL, cfg.Pix.APIKey, cfg.Pix.RequestTimeout)

	paymentService := services.NewPaymentService(
		ticketRepo, raffleRepo, gateway, eventPublisher,
		cfg.Pix.APIKey, cfg.Pix.ReservationWindow,
	)
	webhookService := services.NewWebhookService(
		ticketRepo, raffleRepo, eventPublisher, jobQueue,
		mailer, cfg.Mail.FromAddress, cfg.App.Name,
	)
	statusService := services.NewStatusService(ticketRepo)
	cleanupService := services.NewCleanupService(ticketRepo, eventPublisher)
	raffleService := services.NewRaffleService(raffleRepo, ticketRepo, appCache)

	queue.RegisterJob("*jobs.CleanupExpiredTicketsJob", func() queue.Job {
		return jobs.NewCleanupExpiredTicketsJob(cleanupService)
	})

	// 9. Controller'lar
	pixController := controllers.NewPixController(paymentService, statusService)
	webhookController := controllers.NewWebhookController(webhookService)
	cleanupController := controllers.NewCleanupController(cleanupService)
	raffleController := controllers.NewRaffleController(raffleService)

	// 10. Router ve middleware
	r := router.New()
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.Logging)
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigin))

	rateLimiter := middleware.NewRateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)
	defer rateLimiter.Stop()

	api := r.Group("/api")

	generateRoute := api.POST("/pix/generate", pixController.GeneratePix)
	if cfg.RateLimit.Enabled {
		generateRoute.Middleware(middleware.RateLimit(rateLimiter))
	}

	api.POST("/pix/status", pixController.CheckPaymentStatus)
	api.POST("/webhook/pix", webhookController.HandlePayment)
	api.POST("/cleanup/expired-tickets", cleanupController.CleanupExpired).
		Middleware(middleware.CronSecret(cfg.Cleanup.SecretHash))

	api.GET("/raffles", raffleController.ListActive)
	api.GET("/raffles/{slug}", raffleController.GetBySlug)

	jwtConfig := auth.DefaultJWTConfig()
	jwtConfig.Secret = cfg.Auth.JWTSecret
	api.GET("/admin/raffles/{id}/stats", raffleController.GetStats).
		Middleware(middleware.RequireAuth(jwtConfig))

	// 11. Queue worker
	worker := queue.NewWorker(jobQueue, stdLogger).
		SetMaxRetries(cfg.Queue.MaxAttempts).
		SetRetryDelay(time.Duration(cfg.Queue.RetryAfter) * time.Second)
	go worker.Work("emails", "maintenance")

	// 12. Zamanlanmış temizlik: her tick'te sweep job'ı kuyruğa atılır
	cleanupTicker := time.NewTicker(cfg.Cleanup.Interval)
	defer cleanupTicker.Stop()
	go func() {
		for range cleanupTicker.C {
			job := jobs.NewCleanupExpiredTicketsJob(cleanupService)
			job.TriggeredBy = "scheduler"
			if err := jobQueue.Push(job, "maintenance"); err != nil {
				log.WithError(err).Error("❌ Temizlik job'ı kuyruğa atılamadı")
			}
		}
	}()

	// 13. HTTP server ve graceful shutdown
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("✅ HTTP sunucusu dinliyor")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("❌ HTTP sunucusu başlatılamadı")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.WithField("signal", sig.String()).Info("Kapatma sinyali alındı, sunucu durduruluyor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("❌ Sunucu temiz kapatılamadı")
	}

	worker.Stop()

	log.Info("✅ Sunucu kapatıldı")
}
