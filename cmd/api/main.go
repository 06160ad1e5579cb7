package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ai-listener/internal/config"
	"ai-listener/internal/db"
	"ai-listener/internal/email"
	"ai-listener/internal/emotion"
	apihttp "ai-listener/internal/http"
	"ai-listener/internal/repository"
	"ai-listener/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	lexicon := emotion.DefaultLexicon()
	if cfg.LexiconPath != "" {
		lexicon, err = emotion.LoadLexiconFile(cfg.LexiconPath)
		if err != nil {
			logger.Fatal("lexicon load", zap.Error(err), zap.String("path", cfg.LexiconPath))
		}
		logger.Info("lexicon loaded", zap.String("path", cfg.LexiconPath))
	}
	engine := emotion.NewEngine(lexicon)
	picker := emotion.SharedPicker
	if cfg.ResponseSeed != 0 {
		picker = emotion.NewSeededPicker(cfg.ResponseSeed)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()
	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)
	moodRepo := repository.NewPgMoodRepository(pool)

	var alertSender email.Sender = email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			alertSender = sender
		}
	}
	alerter := service.NewSafetyAlerter(logger, alertSender, cfg.SafetyAlertEmail)
	if alerter == nil {
		logger.Warn("safety alerts disabled")
	}

	var (
		chatLimiter = service.NewMemoryRateLimiter(time.Minute, cfg.ChatRateLimit)
		tokenStore  service.RefreshTokenStore
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			chatLimiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.ChatRateLimit)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}
	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	userSvc := service.NewUserService(logger, userRepo)
	chatSvc := service.NewChatService(logger, engine, picker, userRepo, messageRepo, moodRepo, chatLimiter, alerter)
	moodSvc := service.NewMoodService(logger, moodRepo, lexicon)
	analysisSvc := service.NewAnalysisService(engine, picker, logger)
	extrasSvc := service.NewExtrasService(picker)

	router := apihttp.NewRouter(logger, cfg.CORSAllowedOrigins, jwtSvc,
		apihttp.NewUserHandler(logger, userSvc, jwtSvc),
		apihttp.NewChatHandler(logger, chatSvc),
		apihttp.NewMoodHandler(logger, moodSvc),
		apihttp.NewAnalyzeHandler(logger, analysisSvc),
		apihttp.NewExtrasHandler(logger, extrasSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
