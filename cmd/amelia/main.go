// Amelia orchestrator server: provides the HTTP API, runs the
// Architect/Developer/Reviewer workflow machine and streams events over
// WebSocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/existential-birds/amelia-sub003/pkg/agent"
	"github.com/existential-birds/amelia-sub003/pkg/api"
	"github.com/existential-birds/amelia-sub003/pkg/cleanup"
	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/database"
	"github.com/existential-birds/amelia-sub003/pkg/driver"
	"github.com/existential-birds/amelia-sub003/pkg/driver/anthropicapi"
	"github.com/existential-birds/amelia-sub003/pkg/driver/claudecli"
	"github.com/existential-birds/amelia-sub003/pkg/events"
	"github.com/existential-birds/amelia-sub003/pkg/masking"
	"github.com/existential-birds/amelia-sub003/pkg/orchestrator"
	"github.com/existential-birds/amelia-sub003/pkg/services"
	"github.com/existential-birds/amelia-sub003/pkg/slack"
	"github.com/existential-birds/amelia-sub003/pkg/tracker"
	"github.com/existential-birds/amelia-sub003/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("AMELIA_CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting Amelia", "version", version.Full(), "pod_id", podID, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	workflowService := services.NewWorkflowService(dbClient.Client)
	checkpointService := services.NewCheckpointService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	tokenService := services.NewTokenService(dbClient.Client)
	promptService := services.NewPromptService(dbClient.Client)
	profileService := services.NewProfileService(dbClient.Client)
	settingsService := services.NewSettingsService(dbClient.Client)

	if err := profileService.SyncFromConfig(ctx, cfg.Profiles); err != nil {
		slog.Error("Failed to sync profiles to database", "error", err)
		os.Exit(1)
	}

	// Server settings stored in the database override file config, so
	// retention can be tuned without a redeploy.
	traceDays, err := settingsService.GetIntSetting(ctx, services.SettingTraceRetentionDays,
		cfg.Retention.TraceRetentionDays)
	if err != nil {
		slog.Error("Failed to read server settings", "error", err)
		os.Exit(1)
	}
	if traceDays != cfg.Retention.TraceRetentionDays {
		slog.Info("Trace retention overridden by server setting",
			"file_value", cfg.Retention.TraceRetentionDays, "effective", traceDays)
		cfg.Retention.TraceRetentionDays = traceDays
	}
	slog.Info("Services initialized")

	// 4. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB(), cfg.Retention.TracePersistenceEnabled)
	backfillQuerier := events.NewEventServiceAdapter(dbClient.Client)
	connManager := events.NewConnectionManager(backfillQuerier,
		10*time.Second, 30*time.Second, cfg.Server.WSIdleTimeout)

	// Dedicated pgx connection for LISTEN, outside the pool
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	if err := connManager.ListenGlobals(ctx); err != nil {
		slog.Error("Failed to LISTEN on global channels", "error", err)
		os.Exit(1)
	}
	slog.Info("Streaming infrastructure initialized")

	// 5. Slack notifications (nil service disables them)
	var slackService *slack.Service
	if cfg.Slack.Enabled {
		slackService = slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.DashboardURL,
		})
		if slackService == nil {
			slog.Warn("Slack enabled but token or channel missing, notifications disabled",
				"token_env", cfg.Slack.TokenEnv)
		}
	}

	// 6. Orchestrator
	maskingService := masking.NewService(*cfg.Masking)
	agentDeps := &agent.Deps{
		Publisher:         eventPublisher,
		Masker:            maskingService,
		Tokens:            tokenService,
		StreamToolResults: cfg.Orchestrator.StreamToolResults,
	}

	claudeDriver := claudecli.New(getEnv("CLAUDE_BINARY", "claude"))
	anthropicDriver := anthropicapi.New(os.Getenv("ANTHROPIC_API_KEY"))

	orch := orchestrator.NewService(orchestrator.Deps{
		Config:      cfg.Orchestrator,
		Profiles:    cfg.Profiles,
		DefaultPro:  cfg.DefaultProfile,
		Workflows:   workflowService,
		Checkpoints: checkpointService,
		Prompts:     promptService,
		Publisher:   eventPublisher,
		Agents:      agentDeps,
		Drivers: func(dt config.DriverType) (driver.Driver, error) {
			switch dt {
			case config.DriverClaudeCLI:
				return claudeDriver, nil
			case config.DriverAnthropicAPI:
				return anthropicDriver, nil
			}
			return nil, fmt.Errorf("unknown driver type %q", dt)
		},
		Trackers: func(tt config.TrackerType) (tracker.Tracker, error) { return tracker.New(tt) },
		Slack:    slackService,
		PodID:    podID,
	})
	if err := orch.Start(ctx); err != nil {
		slog.Error("Failed to start orchestrator", "error", err)
		os.Exit(1)
	}

	// 7. Retention sweeps
	cleanupService := cleanup.NewService(cfg.Retention, eventService, checkpointService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	apiServer := api.NewServer(orch, workflowService, eventService, tokenService,
		connManager, dbClient, cfg.Server)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Amelia started successfully",
		"pod_id", podID,
		"max_concurrent", cfg.Orchestrator.MaxConcurrent)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: drain machine tasks first so they checkpoint,
	// then stop the HTTP server.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Orchestrator.GracefulShutdownTimeout)
	orch.Shutdown(shutdownCtx)
	cancel()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
