package kb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	data := []byte(`
name: rain
knowledge:
  - "Rain => Wet"
  - "Rain"
queries:
  - "Wet"
`)
	config, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "rain", config.Name)
	assert.Equal(t, []string{"Rain => Wet", "Rain"}, config.Knowledge)
	assert.Equal(t, []string{"Wet"}, config.Queries)
	assert.Equal(t, DefaultMaxSymbols, config.MaxSymbols)
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"missing name", "queries: [A]"},
		{"no queries", "name: x\nknowledge: [A]"},
		{"empty query", "name: x\nqueries: [\"\"]"},
		{"empty knowledge entry", "name: x\nknowledge: [\"\"]\nqueries: [A]"},
		{"negative limit", "name: x\nqueries: [A]\nmax_symbols: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDecodeMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("name: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestWriteSampleAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kb.yaml")
	written, err := WriteSample(path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Sample(), *config)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
