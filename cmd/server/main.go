package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ev-range-service/internal/adapters/primary/http/handlers"
	"ev-range-service/internal/adapters/primary/http/middleware"
	"ev-range-service/internal/adapters/primary/http/web"
	"ev-range-service/internal/adapters/secondary/postgres"
	promadapter "ev-range-service/internal/adapters/secondary/prometheus"
	"ev-range-service/internal/adapters/secondary/regressor"
	"ev-range-service/internal/config"
	output "ev-range-service/internal/core/ports/output"
	"ev-range-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "evrange",
		Short:         "EV driving range prediction service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the prediction form and API",
			RunE:  runServe,
		},
		newPredictCmd(),
		newSchemaCmd(),
	)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	initLogger(cfg)

	// The model is loaded exactly once, before any request can be served.
	model, err := loadModel(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	var recorder output.PredictionRecorder = output.NopRecorder{}
	if cfg.Metrics.Enabled {
		recorder, err = promadapter.NewRecorder(nil)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		log.Info("prometheus metrics enabled")
	}

	// Core Services
	predictionSvc := services.NewPredictionService(model, recorder)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(predictionSvc)

	if log.GetLevel() < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.SetHTMLTemplate(web.Templates())

	h.RegisterPages(router)
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)
	router.GET("/healthz", h.Healthz)
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// loadModel resolves the artifact, through the registry database when
// enabled, and deserializes it.
func loadModel(ctx context.Context, cfg *config.Config) (output.Regressor, error) {
	src := services.ArtifactSource{
		Path:        cfg.Model.Path,
		ModelName:   cfg.Registry.ModelName,
		VersionName: cfg.Registry.VersionName,
	}

	if !cfg.Registry.Enabled {
		return services.NewModelArtifactService(regressor.NewLoader(), nil).Load(ctx, src)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Registry.QueryTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Registry.DSN())
	if err != nil {
		return nil, fmt.Errorf("create registry pool: %w", err)
	}
	// Only needed to resolve the artifact path.
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping registry db: %w", err)
	}
	log.Info("model registry connection established")

	artifactSvc := services.NewModelArtifactService(regressor.NewLoader(), postgres.NewArtifactLocator(pool))
	return artifactSvc.Load(ctx, src)
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
