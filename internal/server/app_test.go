package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/logging"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/server/config"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedContent = `
categories:
  - title: Medical
    slug: medical
campaigns:
  - title: Heart surgery
    slug: heart-surgery
    goal: 1000
    raised: 250
    category: medical
`

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = repomanager.MemoryDSN
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.S3Bucket = ""
	c.ShutdownTimeout = time.Second
	return c
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewApp_BadCurrency(t *testing.T) {
	c := memoryConfig(t)
	c.DefaultCurrency = "XYZW"

	_, err := NewApp(context.Background(), c, logging.Discard())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedCurrency)
}

func TestRun_SeedsAndStopsOnCancel(t *testing.T) {
	c := memoryConfig(t)
	c.SeedFile = writeSeed(t, seedContent)

	app, err := NewApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		page, err := app.catalog.ListCampaigns(context.Background(), models.PageRequest{Filter: models.FilterAll, Limit: 10})
		return err == nil && len(page.Campaigns) == 1
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
}

func TestRun_InvalidSeedFails(t *testing.T) {
	c := memoryConfig(t)
	c.SeedFile = writeSeed(t, "campaigns:\n  - title: No slug\n    goal: 10\n")

	app, err := NewApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)
	defer app.Close()

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestRun_MissingSeedFails(t *testing.T) {
	c := memoryConfig(t)
	c.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	app, err := NewApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)
	defer app.Close()

	assert.Error(t, app.Run(context.Background()))
}

func TestRun_BadAddressFails(t *testing.T) {
	c := memoryConfig(t)
	c.EndpointAddrHTTP = "127.0.0.1:99999"

	app, err := NewApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)
	defer app.Close()

	select {
	case err := <-runAsync(app):
		assert.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app kept running with a bad HTTP address")
	}
}

func runAsync(app *App) <-chan error {
	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	return done
}
