package tagcloud

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud.yaml")
	data := "separators: \" ,.\"\nmin-font: 12\nmax-font: 36\nstylesheets:\n  - style.css\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	require.Equal(t, " ,.", cfg.Separators)
	require.Equal(t, 12, cfg.MinFont)
	require.Equal(t, 36, cfg.MaxFont)
	require.Equal(t, []string{"style.css"}, cfg.Stylesheets)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestGenerateSampleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud.yaml")
	require.NoError(t, GenerateSample(path))

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultSeparators, cfg.Separators)
	require.Equal(t, MinFontSize, cfg.MinFont)
	require.Equal(t, MaxFontSize, cfg.MaxFont)
	require.Equal(t, DefaultStylesheets, cfg.Stylesheets)
}
