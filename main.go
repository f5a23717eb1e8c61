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

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"relay/anthropic"
	"relay/config"
	"relay/handler"
	"relay/logging"
)

const version = "1.0.0"

func main() {
	config.ParseArgs()
	if config.CliArgs.Version {
		fmt.Println("claude-relay " + version)
		return
	}

	if config.CliArgs.Debug {
		logging.InitLogger(logrus.DebugLevel)
	} else {
		logging.InitLogger(logrus.InfoLevel)
	}
	log := logging.GetLogger()

	// A local .env may carry RELAY_* overrides; missing is fine.
	_ = godotenv.Load(".env")

	cfg, err := config.LoadConfig(config.CliArgs.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the Anthropic client with a bounded outbound timeout
	backend := anthropic.NewClient(cfg.APIRoot, time.Duration(cfg.BackendTimeout)*time.Second)

	// Initialize the HTTP handler with the backend client
	relayHandler := handler.NewRelayHandler(backend)

	// Define the server
	server := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: relayHandler,
	}

	go func() {
		log.Infof("Claude API relay running on http://%s", cfg.ListenAddress)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Infoln("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Graceful shutdown failed: %v", err)
		server.Close()
	}
}
