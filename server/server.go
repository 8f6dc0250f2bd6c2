package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-multierror"
	"github.com/odpf/salt/log"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"

	"github.com/odpf/digits/config"
	"github.com/odpf/digits/core/dataset"
	"github.com/odpf/digits/core/dataset/handler/v1beta1"
	"github.com/odpf/digits/core/dataset/service"
	"github.com/odpf/digits/core/dataset/view"
	"github.com/odpf/digits/internal/store/postgres"
	datasetStore "github.com/odpf/digits/internal/store/postgres/dataset"
)

const (
	shutdownWait = 30 * time.Second
	idleTimeout  = 120 * time.Second
)

type setupFn func() error

type RouteRegistrar interface {
	RegisterRoutes(*mux.Router)
}

type DigitsServer struct {
	conf   config.ServerConfig
	logger log.Logger

	dbConn *gorm.DB
	routes []RouteRegistrar

	serverAddr string
	httpServer *http.Server

	cleanupFn []func() error
}

func New(conf config.ServerConfig) (*DigitsServer, error) {
	addr := fmt.Sprintf("%s:%d", conf.Serve.Host, conf.Serve.Port)
	server := &DigitsServer{
		conf:       conf,
		serverAddr: addr,
		logger:     createLogger(conf.Log, os.Stderr),
	}

	setupFns := []setupFn{
		server.setupTelemetry,
		server.setupDB,
		server.setupHandlers,
		server.setupHTTPServer,
	}

	for _, fn := range setupFns {
		if err := fn(); err != nil {
			return server, err
		}
	}

	server.logger.Info("Starting Digits", "version", config.BuildVersion)
	server.startListening()

	return server, nil
}

func createLogger(conf config.LogConfig, w io.Writer) *log.Logrus {
	if conf.Format == config.LogFormatJSON {
		return log.NewLogrus(
			log.LogrusWithLevel(conf.Level.String()),
			log.LogrusWithWriter(w),
			log.LogrusWithFormatter(&logrus.JSONFormatter{}),
		)
	}
	return log.NewLogrus(
		log.LogrusWithLevel(conf.Level.String()),
		log.LogrusWithWriter(w),
	)
}

func (s *DigitsServer) setupTelemetry() error {
	teleShutdown, err := config.InitTelemetry(s.logger, s.conf.Telemetry)
	if err != nil {
		return err
	}

	s.cleanupFn = append(s.cleanupFn, func() error {
		teleShutdown()
		return nil
	})
	return nil
}

func (s *DigitsServer) setupDB() error {
	if err := postgres.Migrate(s.conf.Serve.DB.DSN); err != nil {
		return fmt.Errorf("error executing migration up: %w", err)
	}

	var err error
	s.dbConn, err = postgres.Connect(s.conf.Serve.DB, s.logger.Writer())
	if err != nil {
		return fmt.Errorf("postgres.Connect: %w", err)
	}
	s.cleanupFn = append(s.cleanupFn, func() error {
		sqlDB, err := s.dbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})
	return nil
}

func (s *DigitsServer) setupHandlers() error {
	jobRepo := datasetStore.NewJobRepository(s.dbConn)
	jobService := service.NewJobService(s.logger, jobRepo, s.conf.Serve.Registry.CacheTTL, s.conf.Serve.Registry.CacheCleanup)

	renderers, err := NewRenderers()
	if err != nil {
		return fmt.Errorf("unable to prepare dataset views: %w", err)
	}
	s.routes = append(s.routes, v1beta1.NewDatasetHandler(s.logger, jobService, renderers))
	return nil
}

func (s *DigitsServer) setupHTTPServer() error {
	accessLog, err := newAccessLogger(s.logger)
	if err != nil {
		return fmt.Errorf("unable to create access logger: %w", err)
	}

	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(NewRouter(s.logger, accessLog, s.routes...), config.AppName()),
		Addr:         s.serverAddr,
		ReadTimeout:  s.conf.Serve.ReadTimeout,
		WriteTimeout: s.conf.Serve.WriteTimeout,
		IdleTimeout:  idleTimeout,
	}
	return nil
}

// NewRenderers prepares the view of every recognized dataset kind
func NewRenderers() (v1beta1.Renderers, error) {
	classification, err := view.NewClassificationRenderer()
	if err != nil {
		return nil, err
	}
	generic, err := view.NewGenericRenderer()
	if err != nil {
		return nil, err
	}
	return v1beta1.Renderers{
		dataset.KindImageClassification: classification,
		dataset.KindGenericImage:        generic,
	}, nil
}

// NewRouter builds the base router with the ping route and every registrar's routes
func NewRouter(l log.Logger, accessLog *logrus.Entry, registrars ...RouteRegistrar) *mux.Router {
	router := mux.NewRouter()
	router.Use(recoveryMiddleware(l), accessLogMiddleware(accessLog))

	router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "pong")
	}).Methods(http.MethodGet)

	for _, r := range registrars {
		r.RegisterRoutes(router)
	}
	return router
}

func (s *DigitsServer) startListening() {
	// run our server in a goroutine so that it doesn't block to wait for termination requests
	go func() {
		s.logger.Info("Listening at", "address", s.serverAddr)
		if err := s.httpServer.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				s.logger.Fatal("server error", "error", err)
			}
		}
	}()
}

func (s *DigitsServer) Shutdown() error {
	s.logger.Warn("Shutting down server")
	var result *multierror.Error
	if s.httpServer != nil {
		// Create a deadline to wait for server
		ctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	for _, fn := range s.cleanupFn {
		if err := fn(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		s.logger.Error("Error in server shutdown", "error", err)
		return err
	}
	s.logger.Info("Server shutdown complete")
	return nil
}
