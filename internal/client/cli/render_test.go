package cli

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophfund/internal/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFormatter(t *testing.T) *progress.Formatter {
	t.Helper()
	f, err := progress.NewFormatter("en-US", "KGS")
	require.NoError(t, err)
	return f
}

func TestCardsPerScreen(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{40, 10},
		{79, 10},
		{80, 2},
		{119, 2},
		{120, 3},
		{200, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cardsPerScreen(tt.width), "width %d", tt.width)
	}
}

func TestRenderScreen_CardsSideBySide(t *testing.T) {
	f := testFormatter(t)

	got := renderScreen(sampleCampaigns(3), f, 120)

	assert.Equal(t, 3, strings.Count(got, "╭"))
	for _, title := range []string{"Campaign 0", "Campaign 1", "Campaign 2"} {
		assert.Contains(t, got, title)
	}
	assert.Contains(t, got, "/campaigns/campaign-1")
	// all boxes share the first line
	assert.Equal(t, 3, strings.Count(strings.Split(got, "\n")[0], "╭"))
}

func TestRenderScreen_NarrowIsList(t *testing.T) {
	f := testFormatter(t)

	got := renderScreen(sampleCampaigns(4), f, 60)

	rows := strings.Split(got, "\n")
	assert.Len(t, rows, 4)
	assert.NotContains(t, got, "╭")
	assert.Contains(t, rows[2], "[")
	assert.Contains(t, rows[2], "10%")
	assert.Contains(t, rows[2], "campaign-2")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc…", truncate("abcdef", 4))
	assert.Equal(t, "…", truncate("abcdef", 1))
}
