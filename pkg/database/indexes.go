package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 20260805120000_init.up.sql.
//
// The worktree exclusivity index is the authoritative guard for "at most one
// open workflow per worktree"; the in-process check in the orchestrator is
// only a fast path. Pending is part of the predicate so two concurrent
// creates of the same worktree cannot both land.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS workflow_worktree_path_open
		ON workflows (worktree_path)
		WHERE status IN ('pending', 'planning', 'in_progress', 'blocked')`)
	if err != nil {
		return fmt.Errorf("failed to create worktree exclusivity index: %w", err)
	}

	return nil
}
