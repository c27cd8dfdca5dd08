package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/excerptkit/excerpt"
	"github.com/randalmurphal/excerptkit/tokens"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, excerpt.DefaultMaxTokens, s.MaxTokens)
	assert.Equal(t, excerpt.DefaultMaxLines, s.MaxLines)
	assert.Zero(t, s.CharsPerToken)
	assert.Empty(t, s.Model)
	assert.NoError(t, s.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeSettings(t, "excerpt.yaml", `
max_tokens: 4096
max_lines: 200
chars_per_token: 3.5
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4096, s.MaxTokens)
	assert.Equal(t, 200, s.MaxLines)
	assert.InDelta(t, 3.5, s.CharsPerToken, 0.001)
}

func TestLoad_TOML(t *testing.T) {
	path := writeSettings(t, "excerpt.toml", `
max_tokens = 4096
max_lines = 200
model = "claude-sonnet-4"
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4096, s.MaxTokens)
	assert.Equal(t, 200, s.MaxLines)
	assert.Equal(t, "claude-sonnet-4", s.Model)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "excerpt.yml", "max_lines: 64\n")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, excerpt.DefaultMaxTokens, s.MaxTokens)
	assert.Equal(t, 64, s.MaxLines)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeSettings(t, "excerpt.ini", "max_lines = 64\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported settings format")
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := writeSettings(t, "excerpt.yaml", "max_tokens: -1\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Settings) {}},
		{name: "zero max tokens", mutate: func(s *Settings) { s.MaxTokens = 0 }, wantErr: true},
		{name: "zero max lines", mutate: func(s *Settings) { s.MaxLines = 0 }, wantErr: true},
		{name: "negative ratio", mutate: func(s *Settings) { s.CharsPerToken = -1 }, wantErr: true},
		{name: "positive ratio", mutate: func(s *Settings) { s.CharsPerToken = 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettings_Options(t *testing.T) {
	s := Default()
	s.MaxTokens = 1024
	s.MaxLines = 64

	opts := s.Options()
	assert.Equal(t, 1024, opts.MaxTokens)
	assert.Equal(t, 64, opts.MaxLines)
}

func TestSettings_Options_ModelOverridesMaxTokens(t *testing.T) {
	s := Default()
	s.MaxTokens = 1024
	s.Model = "claude-sonnet-4"

	opts := s.Options()
	want := tokens.NewContextBudgetForModel("claude-sonnet-4").Excerpt
	assert.Equal(t, want, opts.MaxTokens)
}

func TestSettings_Counter(t *testing.T) {
	s := Default()
	c, ok := s.Counter().(*tokens.EstimatingCounter)
	require.True(t, ok)
	assert.Equal(t, tokens.DefaultCharsPerToken, c.CharsPerToken)

	s.CharsPerToken = 3
	c, ok = s.Counter().(*tokens.EstimatingCounter)
	require.True(t, ok)
	assert.Equal(t, 3.0, c.CharsPerToken)
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	for _, field := range []string{"max_tokens", "max_lines", "chars_per_token", "model"} {
		assert.Contains(t, string(data), field)
	}
}

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
