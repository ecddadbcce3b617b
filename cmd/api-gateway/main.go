package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/cob-engineering/plan-review-api/internal/embedding"
	"github.com/cob-engineering/plan-review-api/internal/handler"
	"github.com/cob-engineering/plan-review-api/internal/llm"
	"github.com/cob-engineering/plan-review-api/internal/middleware"
	"github.com/cob-engineering/plan-review-api/internal/repository"
	"github.com/cob-engineering/plan-review-api/internal/service"
	"github.com/cob-engineering/plan-review-api/pkg/cache"
	"github.com/cob-engineering/plan-review-api/pkg/config"
	"github.com/cob-engineering/plan-review-api/pkg/database"
	"github.com/cob-engineering/plan-review-api/pkg/jobs"
	"github.com/cob-engineering/plan-review-api/pkg/logger"
	corsmiddleware "github.com/cob-engineering/plan-review-api/pkg/middleware/cors"
	reqidmiddleware "github.com/cob-engineering/plan-review-api/pkg/middleware/requestid"
	"github.com/cob-engineering/plan-review-api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to open database", "error", err)
	}
	defer db.Close()
	if err := repository.Migrate(db, cfg.QA.EmbeddingDims); err != nil {
		logr.Sugar().Fatalw("failed to migrate database", "error", err)
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, answer caching disabled", "error", err)
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	checklistRepo := repository.NewChecklistRepository()
	commentRepo := repository.NewCommentRepository()
	reviewRepo := repository.NewReviewRepository(db)
	exportRepo := repository.NewExportRepository(db)
	manualRepo := repository.NewManualRepository(db)

	metricsSvc := service.NewMetricsService(nil)

	validate := validator.New()
	reviewSvc := service.NewReviewService(reviewRepo, checklistRepo, commentRepo, validate, logr)

	exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	generator := service.NewExportGenerator(reviewSvc, exportStore, signer, service.GeneratorConfig{
		APIPrefix:            cfg.APIPrefix,
		ResultTTL:            cfg.Exports.SignedURLTTL,
		PDFDateOffsetMinutes: cfg.Exports.PDFDateOffsetMinutes,
		AuthorFallback:       cfg.Exports.AuthorFallback,
	}, logr)

	worker := service.NewExportWorker(exportRepo, generator, metricsSvc, 3, logr)
	queue := jobs.NewQueue("exports", worker.Handle, jobs.QueueConfig{
		Workers:    cfg.Exports.Workers,
		BufferSize: cfg.Exports.QueueSize,
		Logger:     logr,
	})
	queue.Start(ctx)
	defer queue.Stop()
	metricsSvc.SetPendingExports(queue.Pending)

	exportSvc := service.NewExportService(exportRepo, reviewSvc, queue, generator, logr, service.ExportServiceConfig{
		ResultTTL:       cfg.Exports.SignedURLTTL,
		CleanupInterval: cfg.Exports.CleanupInterval,
	})
	exportSvc.RecoverPendingJobs(ctx)
	exportSvc.StartCleanup(ctx)

	var embedder embedding.Engine
	var llmClient llm.Client
	if cfg.QA.Enabled && cfg.QA.GenAIAPIKey != "" {
		engine, err := embedding.NewGenAIEngine(cfg.QA.GenAIAPIKey, cfg.QA.EmbeddingModel, cfg.QA.EmbeddingDims)
		if err != nil {
			logr.Sugar().Warnw("failed to init embedding engine, qa disabled", "error", err)
		} else {
			embedder = engine
		}
		client, err := llm.NewGenAIClient(cfg.QA.GenAIAPIKey, cfg.QA.AnswerModel)
		if err != nil {
			logr.Sugar().Warnw("failed to init llm client, qa disabled", "error", err)
		} else {
			llmClient = client
		}
	}
	qaSvc := service.NewQAService(manualRepo, embedder, llmClient, cacheRepo, metricsSvc, service.QAServiceConfig{
		MaxChunks:           cfg.QA.MaxChunks,
		SimilarityThreshold: cfg.QA.SimilarityThreshold,
		CacheTTL:            cfg.QA.CacheTTL,
	}, logr)
	ingestSvc := service.NewIngestService(manualRepo, embedder, cacheRepo, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	healthHandler := handler.NewHealthHandler(db, metricsSvc, cfg.Env)
	checklistHandler := handler.NewChecklistHandler(checklistRepo)
	commentHandler := handler.NewCommentHandler(commentRepo)
	reviewHandler := handler.NewReviewHandler(reviewSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	qaHandler := handler.NewQAHandler(qaSvc, ingestSvc)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/stats", healthHandler.Stats)

		api.GET("/review-types", checklistHandler.ReviewTypes)
		api.GET("/reviewers", checklistHandler.Reviewers)
		api.GET("/checklist", checklistHandler.Sections)
		api.GET("/checklist/items/:id", checklistHandler.Item)

		api.GET("/comments", commentHandler.List)
		api.GET("/comments/:id", commentHandler.Get)

		api.POST("/reviews", reviewHandler.Create)
		api.GET("/reviews", reviewHandler.List)
		api.GET("/reviews/:id", reviewHandler.Get)
		api.DELETE("/reviews/:id", reviewHandler.Delete)
		api.GET("/reviews/:id/checklist", reviewHandler.Checklist)
		api.PUT("/reviews/:id/answers", reviewHandler.Answer)
		api.GET("/reviews/:id/summary", reviewHandler.Summary)
		api.GET("/reviews/:id/comments", reviewHandler.Comments)

		api.POST("/reviews/:id/exports", exportHandler.Create)
		api.GET("/reviews/:id/exports", exportHandler.List)
		api.GET("/exports/:id", exportHandler.Status)
		api.GET("/export/:token", exportHandler.Download)

		api.POST("/qa", qaHandler.Ask)
		api.POST("/manual/ingest", qaHandler.Ingest)
		api.GET("/manual/stats", qaHandler.Stats)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Warnw("graceful shutdown failed", "error", err)
	}
	_ = cacheRepo.Close()
}
