package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/internal/config"
	"github.com/teheiw192/kcjqr/internal/database"
	"github.com/teheiw192/kcjqr/internal/domain/contract"
	"github.com/teheiw192/kcjqr/internal/domain/service"
	"github.com/teheiw192/kcjqr/internal/handlers"
	"github.com/teheiw192/kcjqr/internal/onebot"
	"github.com/teheiw192/kcjqr/internal/parser"
	"github.com/teheiw192/kcjqr/internal/storage"
	"github.com/teheiw192/kcjqr/migrator/sqlite"
	"github.com/teheiw192/kcjqr/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found")
	}

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := storage.New(cfg.DataDir, log)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.Error(err))
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	log.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	dm := database.NewInstance(db)
	messenger := onebot.NewClient(cfg.OneBotAPIURL, cfg.OneBotToken, log)

	var secondary contract.CourseParser
	if cfg.AIParserURL != "" {
		secondary = parser.NewAIParser(cfg.AIParserURL, cfg.AIParserToken, log)
	}
	courseParser := parser.NewFallback(parser.NewTextParser(), secondary, log)

	services := service.New(store, dm, messenger, courseParser, log, service.Options{
		LeadMinutes:  cfg.LeadMinutes,
		PollInterval: cfg.PollInterval,
		DigestTime:   cfg.DigestTime,
	})

	services.Reminder.Start()

	handler := handlers.New(services.Course, messenger, log)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	// stop the loops first, then flush everything they touched
	services.Reminder.Stop()
	if err := store.Flush(); err != nil {
		log.Error("failed to flush storage", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}

	log.Info("shutdown complete")
}
