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

	"go.uber.org/zap"

	"github.com/SabbirRshuvo/Volunteer-management-server/api/handlers"
	"github.com/SabbirRshuvo/Volunteer-management-server/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		zap.S().With(err).Fatal("failed to initialize volunteer-management-server")
	}

	a.Scheduler.Start()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%v", a.Config.Port),
		Handler: a.Handler,
	}

	go func() {
		zap.S().Infow("volunteer-management-server is up and running",
			"port", a.Config.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().With(err).Fatal("server stopped unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zap.S().Info("shutting down volunteer-management-server")
	a.Scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().With(err).Error("failed to shut down http server")
	}
	if err := a.Shutdown(ctx); err != nil {
		zap.S().With(err).Error("failed to disconnect from database")
	}
}
