package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-registry/internal/config"
	"github.com/umalmyha/customer-registry/internal/infra"
	"github.com/umalmyha/customer-registry/internal/repository"
	"github.com/umalmyha/customer-registry/internal/service"
	"github.com/umalmyha/customer-registry/internal/validation"
	"google.golang.org/grpc"
)

// @title       Customer Registry API
// @version     1.0
// @description In-memory registry of customers identified by name
// @BasePath    /
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := infra.Logger(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}

	if err := start(cfg); err != nil {
		logrus.Fatal(err)
	}
}

func start(cfg config.Config) error {
	validator, err := validation.NewEnglish()
	if err != nil {
		return err
	}

	customerRps := repository.NewMemoryCustomerRepository()
	customerSvc := service.NewCustomerService(customerRps)

	app := infra.Router(customerSvc, validator, cfg.HTTPCfg.SwaggerEnabled)

	var grpcServer *grpc.Server
	if cfg.GrpcCfg.Enabled {
		grpcServer = infra.GrpcServer(customerSvc, validator)
	}

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 2)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logrus.Infof("http server is listening on port %d", cfg.HTTPCfg.Port)
		if err := app.Start(fmt.Sprintf(":%d", cfg.HTTPCfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorCh <- fmt.Errorf("http server failed - %w", err)
		}
	}()

	if grpcServer != nil {
		go func() {
			lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GrpcCfg.Port))
			if err != nil {
				errorCh <- fmt.Errorf("failed to listen on port %d - %w", cfg.GrpcCfg.Port, err)
				return
			}

			logrus.Infof("grpc server is listening on port %d", cfg.GrpcCfg.Port)
			if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errorCh <- fmt.Errorf("grpc server failed - %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-shutdownCh:
		logrus.Info("shutdown signal has been sent, stopping servers...")
	case runErr = <-errorCh:
		logrus.Errorf("shutting down, unexpected error occurred - %v", runErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if grpcServer != nil {
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-ctx.Done():
			grpcServer.Stop()
		}
	}

	if err := app.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop http server gracefully - %w", err)
	}
	return runErr
}
