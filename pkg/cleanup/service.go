// Package cleanup provides data retention sweeps.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/services"
)

// Service periodically enforces retention policies:
//   - Purges info/debug events past the retention window
//   - Trims the oldest events over the global cap
//   - Purges trace events on their shorter window
//   - Purges checkpoints of terminal workflows
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config      *config.RetentionConfig
	events      *services.EventService
	checkpoints *services.CheckpointService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, events *services.EventService, checkpoints *services.CheckpointService) *Service {
	return &Service{
		config:      cfg,
		events:      events,
		checkpoints: checkpoints,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"log_retention_days", s.config.LogRetentionDays,
		"trace_retention_days", s.config.TraceRetentionDays,
		"checkpoint_retention_days", s.config.CheckpointRetentionDays,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit, waits for it to finish and runs one
// final sweep so shutdown leaves retention enforced.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.Sweep(context.Background())
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs every retention policy once. Each policy uses its own
// background context so a half-finished sweep still commits what it can
// during shutdown.
func (s *Service) Sweep(_ context.Context) {
	s.purgeExpiredEvents()
	s.trimEventsOverCap()
	s.purgeExpiredTraceEvents()
	s.purgeOldCheckpoints()
}

func (s *Service) purgeExpiredEvents() {
	count, err := s.events.PurgeExpiredEvents(context.Background(), s.config.LogRetentionDays)
	if err != nil {
		slog.Error("Retention: event purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged expired events", "count", count)
	}
}

func (s *Service) trimEventsOverCap() {
	count, err := s.events.TrimEventsOverCap(context.Background(), s.config.LogRetentionMaxEvents)
	if err != nil {
		slog.Error("Retention: event trim failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: trimmed events over cap", "count", count)
	}
}

func (s *Service) purgeExpiredTraceEvents() {
	if !s.config.TracePersistenceEnabled() {
		return
	}
	count, err := s.events.PurgeExpiredTraceEvents(context.Background(), s.config.TraceRetentionDays)
	if err != nil {
		slog.Error("Retention: trace purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged expired trace events", "count", count)
	}
}

func (s *Service) purgeOldCheckpoints() {
	count, err := s.checkpoints.PurgeOldCheckpoints(context.Background(), s.config.CheckpointRetentionDays)
	if err != nil {
		slog.Error("Retention: checkpoint purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old checkpoints", "count", count)
	}
}
