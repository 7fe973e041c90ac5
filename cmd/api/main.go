package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"trait-match/internal/config"
	"trait-match/internal/db"
	"trait-match/internal/events"
	apihttp "trait-match/internal/http"
	"trait-match/internal/repository"
	"trait-match/internal/service"
	"trait-match/internal/worker"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	ctxDB, cancelDB := context.WithTimeout(ctx, 5*time.Second)
	if err := db.Ping(ctxDB, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}
	cancelDB()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
	if err := redisClient.Ping(ctxPing).Err(); err != nil {
		logger.Warn("redis ping failed", zap.Error(err))
	}
	cancel()

	memberRepo := repository.NewPgMemberRepository(pool)
	publisher := events.NewRedisPublisher(redisClient)

	scorer := service.NewTeamScorer(service.DefaultScoringConfig())
	generator := service.NewSolutionGenerator(service.DefaultGeneratorConfig(), nil)
	filter := service.NewSolutionFilter(service.DefaultFilterConfig(), scorer)
	search := service.NewGeneticSearch(service.DefaultGeneticConfig(), scorer, nil)
	grader := service.NewTraitGrader(service.DefaultGradingConfig())

	matcher := service.NewMatchingService(logger, memberRepo, generator, filter, search, grader, publisher, cfg.ResultsTopic)
	tokens := service.NewServerTokenService(cfg.JWTSecret)

	runPool := worker.NewPool(logger, cfg.WorkerConcurrency, cfg.WorkerQueueSize)
	defer runPool.Stop()

	matchingHandler := apihttp.NewMatchingHandler(logger, runPool, matcher)
	router := apihttp.NewRouter(logger, tokens, matchingHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
