package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cprates/discovery-lambda/cmd/lws/internal/api"
	"github.com/cprates/discovery-lambda/pkg/config"
	"github.com/cprates/discovery-lambda/pkg/handler"
	"github.com/cprates/discovery-lambda/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("Failed to load config,", err)
	}
	if err := logging.Setup(cfg.Debug, cfg.LogFormat); err != nil {
		log.Fatalln("Failed to set up logging,", err)
	}

	log.Println("Starting LWS...")

	h := handler.New(handler.Config{ServiceName: cfg.ServiceName})
	log.Println("Serving", cfg.Function.Name, "as service", h.ServiceName())

	s := newServer(cfg.Service.Addr)
	api.Install(s.router, cfg, h)

	errC := make(chan error, 1)
	go func() {
		log.Println("Listening on", cfg.Service.Addr)
		errC <- s.ListenAndServe()
	}()

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errC:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalln(err)
		}
	case sig := <-sigC:
		log.Println("Received", sig, "shutting down LWS...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.Errorln("Failed to shut down gracefully,", err)
		}
	}
}
