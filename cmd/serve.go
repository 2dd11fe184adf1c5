package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/7248-om/gshock12/auth"
	"github.com/7248-om/gshock12/backup"
	"github.com/7248-om/gshock12/chatbot"
	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/mailer"
	"github.com/7248-om/gshock12/metrics"
	"github.com/7248-om/gshock12/middleware"
	"github.com/7248-om/gshock12/payment"
	"github.com/7248-om/gshock12/realtime"
	"github.com/7248-om/gshock12/reviews"
	"github.com/7248-om/gshock12/routes"
	"github.com/7248-om/gshock12/validation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const limiterMaxKeys = 10000

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.WithComponent("server")
	log.Info("✅ Starting application...")

	db, err := openDB()
	if err != nil {
		return err
	}
	if err := validation.Register(); err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinLogger(), metrics.Middleware())
	r.MaxMultipartMemory = int64(cfg.MaxUploadMB) << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOriginList(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Razorpay-Signature"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	deps := routes.Dependencies{
		DB:          db,
		Config:      cfg,
		Tokens:      auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL()),
		Hub:         realtime.NewHub(),
		ChatLimiter: middleware.NewRateLimiter(cfg.ChatRatePerMinute, cfg.ChatRateBurst),
	}

	// Vendor bridges are only set when they were built; a nil one means 503.
	if v, err := auth.NewFirebaseVerifier(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsJSON); err == nil {
		deps.Verifier = v
	} else {
		log.WithError(err).Warn("Firebase login disabled")
	}
	if gw, err := payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayAPIURL); err == nil {
		deps.Gateway = gw
	} else {
		log.WithError(err).Warn("Razorpay checkout disabled")
	}
	if gen, err := chatbot.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel); err == nil {
		deps.Generator = gen
	} else {
		log.WithError(err).Warn("Virtual barista disabled")
	}
	if transport, err := mailer.NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass); err == nil {
		deps.Broadcaster = mailer.NewBroadcaster(transport, cfg.EmailUser, cfg.BroadcastBatchSize)
	} else {
		log.WithError(err).Warn("Marketing email disabled")
	}

	places := reviews.NewPlacesClient(cfg.GooglePlacesURL, cfg.GooglePlaceID, cfg.GoogleAPIKey)
	deps.Reviews = places
	if cfg.RedisURL != "" {
		if rdb, err := reviews.NewRedisClient(cfg.RedisURL); err == nil {
			deps.Reviews = reviews.NewCachedFetcher(places, rdb, cfg.ReviewsCacheTTL())
			defer rdb.Close()
		} else {
			log.WithError(err).Warn("Reviews cache disabled")
		}
	}

	events := realtime.Fanout{deps.Hub}
	if kp := realtime.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic); kp != nil {
		events = append(events, kp)
		defer kp.Close()
	}
	deps.Events = events

	routes.SetupRoutes(r, deps)

	// Back up uploads on schedule, keep BACKUP_RETENTION_HOURS worth
	job := backup.NewJob(cfg.UploadDir, cfg.BackupDir, cfg.BackupRetention())
	scheduler, err := job.Schedule(cfg.BackupSchedule)
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deps.ChatLimiter.Cleanup(limiterMaxKeys)
			case <-stopCleanup:
				return
			}
		}
	}()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("🚀 Server running on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return err
	case <-sigCh:
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown error")
	}
	return nil
}
