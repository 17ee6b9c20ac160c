package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/febdev/feb_shop/internal/config"
	"github.com/febdev/feb_shop/internal/es"
	"github.com/febdev/feb_shop/internal/handlers"
	"github.com/febdev/feb_shop/internal/httpserver"
	"github.com/febdev/feb_shop/internal/logging"
	"github.com/febdev/feb_shop/internal/mykafka"
	"github.com/febdev/feb_shop/internal/service/indexer"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	logger := logging.New(cfg.LOG_LEVEL)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	jwtSecret := []byte(cfg.JWT_SECRET)

	prod := mykafka.NewProducer([]string{cfg.KAFKA_ADDRESS})

	var esClient *elasticsearch.Client
	if cfg.ES_URL != "" {
		esClient, err = es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())

	deps := httpserver.Deps{
		DB:             db,
		Logger:         logger,
		JWTSecret:      jwtSecret,
		AuthHandler:    &handlers.AuthHandler{DB: db, JWTSecret: jwtSecret, Producer: prod},
		ProductHandler: &handlers.ProductHandler{DB: db, Producer: prod},
		SearchHandler:  &handlers.SearchHandler{ES: esClient, Index: cfg.ES_INDEX},
	}

	httpserver.Register(e, &deps)

	rootCtx, stop := context.WithCancel(logging.IntoContext(context.Background(), logger))
	defer stop()

	if esClient != nil && cfg.KAFKA_ADDRESS != "" {
		ix := &indexer.Indexer{
			ES:      esClient,
			Index:   cfg.ES_INDEX,
			Brokers: []string{cfg.KAFKA_ADDRESS},
		}
		go func() {
			if err := ix.Run(rootCtx); err != nil {
				logger.Error("search indexer stopped", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
