package cache

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophfund/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_FileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	c, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, c.Campaigns.Save(ctx, []models.CampaignSummary{{ID: "a", Slug: "a", Title: "A"}}))
	require.NoError(t, c.Metadata.Save(ctx, metadata.Preferences{Filter: "all"}))
	require.NoError(t, c.Close())

	c, err = Open(ctx, path)
	require.NoError(t, err)
	defer c.Close()

	n, err := c.Campaigns.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, err := c.Metadata.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "all", p.Filter)
}

func TestOpen_InMemory(t *testing.T) {
	c, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer c.Close()

	all, err := c.Campaigns.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOpen_DriverError(t *testing.T) {
	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })
	sqlOpen = func(string, string) (*sql.DB, error) { return nil, errors.New("no driver") }

	_, err := Open(context.Background(), ":memory:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open cache")
}

func TestOpen_MigrationError(t *testing.T) {
	// a directory cannot be opened as a database file
	_, err := Open(context.Background(), t.TempDir())
	require.Error(t, err)
}

func TestOpen_CreatesCacheDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "gophfund", "cache.db")

	c, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	assert.FileExists(t, path)
}
