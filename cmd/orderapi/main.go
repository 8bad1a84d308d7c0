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

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/core/config"
	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/core/database"
	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/core/logger"
	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/core/server"
	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/domain"
	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/repo"
	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/service"
	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/transport/http/handler"
	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./configs/orderapi.yaml"
	}
	cfg := config.Load(path)
	log, cleanup := newLogger(cfg)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.Order{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	orderRepo := repo.NewOrderRepo(db)
	orderSvc := service.NewOrderService(orderRepo, log)

	r := router.NewOrderEngine(log, handler.NewOrderHandler(orderSvc))

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("order api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("order api start FAILED", zap.Error(err))
		}
	}()
	log.Info("order api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("order api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	r := cfg.Log.Rotate
	if r.Enable {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON,
			r.Filename, r.MaxSizeMB, r.MaxBackups, r.MaxAgeDays, r.Compress)
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
