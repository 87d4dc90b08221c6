package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plinko_backend/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider

	configPath string
	envPath    string
	rootCmd    *cobra.Command
}

func NewApp() *App {
	a := &App{}
	a.initCommands()
	return a
}

func (a *App) initServiceProvider() {
	if a.ServiceProvider == nil {
		a.ServiceProvider = newServiceProvider(a.configPath)
	}
}

// setup грузит .env, создаёт провайдер и выставляет уровень логов
func (a *App) setup(*cobra.Command, []string) error {
	envErr := config.Load(a.envPath)
	a.initServiceProvider()

	level, err := log.ParseLevel(a.ServiceProvider.LogCfg().Level())
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if envErr != nil {
		log.Printf("Error loading %s file: %v", a.envPath, envErr)
	}
	return nil
}

// Command корневая команда, нужна в тестах для SetArgs/SetOut
func (a *App) Command() *cobra.Command {
	return a.rootCmd
}

func (a *App) Run() error {
	return a.rootCmd.ExecuteContext(context.Background())
}

// serve поднимает HTTP и ждёт сигнала остановки
func (a *App) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    a.ServiceProvider.HTTPCfg().Address(),
		Handler: a.ServiceProvider.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("starting server at %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
