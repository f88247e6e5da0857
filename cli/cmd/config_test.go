package cmd

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	prev := directory
	directory = dir
	defer func() { directory = prev }()

	// Missing file: custom literals are optional.
	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, config.Literals)

	body := "literals:\n  - begin: \"[\"\n    end: \"]\"\n  - begin: \"<\"\n    end: \">\"\n"
	require.NoError(t, os.WriteFile(path.Join(dir, "yescode.yaml"), []byte(body), 0o644))

	config, err = LoadConfig()
	require.NoError(t, err)
	require.Len(t, config.Literals, 2)
	assert.Equal(t, "[", config.Literals[0].Begin)
	assert.Equal(t, "]", config.Literals[0].End)

	literals, err := config.LiteralSet()
	require.NoError(t, err)
	require.Len(t, literals, 2)
	assert.Equal(t, byte('<'), literals[1].Begin)
	assert.Equal(t, byte('>'), literals[1].End)
}

func TestLiteralSetValidation(t *testing.T) {
	_, err := Config{Literals: []LiteralConfig{{Begin: "ab", End: "]"}}}.LiteralSet()
	require.Error(t, err)

	_, err = Config{Literals: []LiteralConfig{{Begin: "@", End: "]"}}}.LiteralSet()
	require.Error(t, err)
}
