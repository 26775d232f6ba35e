package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-grocer-tab/internal/config"
	"go-grocer-tab/internal/mockstore"
	"go-grocer-tab/internal/ws"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1. Open the JSON-file store
	store, err := mockstore.Open(cfg.DataFile)
	if err != nil {
		logrus.Fatalf("failed to open store: %v", err)
	}

	// 2. Seed demo users on a fresh store
	if err := store.SeedUsers(mockstore.DemoUsers()); err != nil {
		logrus.Fatalf("failed to seed users: %v", err)
	}

	// 3. Setup WebSocket Hub
	hub := ws.NewHub()
	go hub.Run()

	// 4. Setup Fiber
	app := mockstore.NewApp(store, hub)

	go func() {
		logrus.WithFields(logrus.Fields{"port": cfg.Port, "data": cfg.DataFile}).Info("mock store listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.Panic(err)
		}
	}()

	// 5. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down mock store")
	if err := app.Shutdown(); err != nil {
		logrus.Fatalf("forced to shutdown: %v", err)
	}
}
