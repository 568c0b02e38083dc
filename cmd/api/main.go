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

	"github.com/sftwrlab/hwlab-backend/config"
	"github.com/sftwrlab/hwlab-backend/internal/bootstrap"
)

const serviceName = "hwlab-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := bootstrap.OpenMongo(ctx, bootstrap.MongoOptions{
		URI:      cfg.Database.URI,
		Database: cfg.Database.Name,
	})
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("storage indexes: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		DB:          db,
		Pinger:      bootstrap.Pinger(client),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
		cancel()
	}()

	log.Printf("listening on :%s (env=%s)", cfg.Server.Port, cfg.App.Environment)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server: %v", err)
	}
}
