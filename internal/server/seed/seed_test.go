package seed

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/logging"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const content = `
categories:
  - title: Medical
    slug: medical
campaigns:
  - title: Heart surgery
    slug: heart-surgery
    goal: 1000
    raised: 250
    category: medical
hospitals:
  - name: City Hospital
    slug: city-hospital
    specialty: Cardiology
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(logging.Discard())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestValidate(t *testing.T) {
	path := writeFile(t, content)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 categories, 1 campaigns, 0 doctors, 1 hospitals")
}

func TestValidate_InvalidContent(t *testing.T) {
	path := writeFile(t, "campaigns:\n  - title: No slug\n    goal: 10\n")

	_, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := execute(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open content file")
}

func TestValidate_RequiresOneFile(t *testing.T) {
	_, err := execute(t, "validate")
	assert.Error(t, err)
}

func TestImport_UsesDSNFlag(t *testing.T) {
	var gotDSN string
	orig := openStore
	openStore = func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
		gotDSN = dsn
		return repomanager.NewMemoryRepositoryManager(), nil
	}
	t.Cleanup(func() { openStore = orig })

	path := writeFile(t, content)
	out, err := execute(t, "import", "--dsn", "postgres://example/db", path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://example/db", gotDSN)
	assert.Contains(t, out, "1 campaigns")
}

func TestImport_DefaultDSNFromEnv(t *testing.T) {
	t.Setenv(dsnEnv, "postgres://from-env/db")

	var gotDSN string
	orig := openStore
	openStore = func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
		gotDSN = dsn
		return nil, errors.New("unreachable")
	}
	t.Cleanup(func() { openStore = orig })

	_, err := execute(t, "import", writeFile(t, content))
	assert.ErrorContains(t, err, "failed to open store")
	assert.Equal(t, "postgres://from-env/db", gotDSN)
}
