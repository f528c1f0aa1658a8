package services

import (
	"context"
	"fmt"
	"time"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/profile"
	"github.com/existential-birds/amelia-sub003/pkg/config"
)

// ProfileService mirrors configured profiles into the database so dashboards
// and workflow rows can reference them. Configuration stays the source of
// truth.
type ProfileService struct {
	client *ent.Client
}

// NewProfileService creates a new ProfileService
func NewProfileService(client *ent.Client) *ProfileService {
	return &ProfileService{client: client}
}

// SyncFromConfig upserts one row per configured profile. Called at startup.
func (s *ProfileService) SyncFromConfig(ctx context.Context, registry *config.ProfileRegistry) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for id, p := range registry.GetAll() {
		agents := make(map[string]interface{}, len(p.Agents))
		for role, agent := range p.Agents {
			agents[string(role)] = map[string]interface{}{
				"driver": string(agent.Driver),
				"model":  agent.Model,
			}
		}

		err := s.client.Profile.Create().
			SetID(id).
			SetTracker(string(p.Tracker)).
			SetWorkingDir(p.WorkingDir).
			SetPlanOutputDir(p.PlanOutputDir).
			SetAgents(agents).
			OnConflictColumns(profile.FieldID).
			UpdateNewValues().
			Exec(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to sync profile %s: %w", id, err)
		}
	}

	return nil
}

// ListProfiles returns all mirrored profiles.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]*ent.Profile, error) {
	profiles, err := s.client.Profile.Query().
		Order(ent.Asc(profile.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return profiles, nil
}
