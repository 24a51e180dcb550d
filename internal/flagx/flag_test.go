package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-d", "memory", "-a", ":50051"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "memory"},
		},
		{
			name:         "equals form",
			args:         []string{"-l=:8080", "-x", "1"},
			allowedFlags: []string{"-l"},
			want:         []string{"-l=:8080"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "positional", "--y=2"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag at end without value",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-config=alt.json"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "-config=alt.json"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-f", "all", "-f", "close-to-goal"},
			allowedFlags: []string{"-f"},
			want:         []string{"-f", "all", "-f", "close-to-goal"},
		},
		{
			name:         "empty",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestParseConfigFiles(t *testing.T) {
	t.Run("short and env", func(t *testing.T) {
		got := ParseConfigFiles([]string{"-c", "/etc/gophfund.json", "-env", ".env.local", "-a", ":1"})
		assert.Equal(t, ConfigFiles{JSON: "/etc/gophfund.json", Env: ".env.local"}, got)
	})

	t.Run("long form, last wins", func(t *testing.T) {
		got := ParseConfigFiles([]string{"-c", "one.json", "-config", "two.json"})
		assert.Equal(t, "two.json", got.JSON)
	})

	t.Run("nothing given", func(t *testing.T) {
		assert.Equal(t, ConfigFiles{}, ParseConfigFiles([]string{"-x", "1"}))
	})
}
