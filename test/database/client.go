// Package database provides database clients for integration tests.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/pkg/database"
	"github.com/existential-birds/amelia-sub003/test/util"
)

// NewTestClient creates a test database client backed by an isolated schema.
// The ent migration runs directly against the schema; partial unique indexes
// are applied the same way production startup does.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
