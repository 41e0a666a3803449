package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	config "github.com/Keoroanthony/go-cornerstore/configs"
	"github.com/Keoroanthony/go-cornerstore/internal/db"
	"github.com/Keoroanthony/go-cornerstore/internal/handlers"
	"github.com/Keoroanthony/go-cornerstore/internal/logger"
	"github.com/Keoroanthony/go-cornerstore/internal/notifier"
)

func main() {

	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db.Init(cfg.Database)

	if err := notifier.Init(context.Background(), cfg.Receipt); err != nil {
		logger.Log.Warn("Order receipts unavailable", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	handlers.RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("CornerStore API listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
