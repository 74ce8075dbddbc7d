package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileGivesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), SettingsFile))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_PartialFileBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("confidence: 0.9\nfraction: 0.75\n"), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 0.9, s.Confidence)
	assert.Equal(t, 0.75, s.Fraction)
	assert.Equal(t, 0.5, s.Quantile)
	assert.Equal(t, 0.8, s.Assurance)
	assert.Equal(t, 0.001, s.Tol)
}

func TestLoadSettings_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	content := "quantile: 0.9\nconfidence: 0.99\nfraction: 0.95\nassurance: 0.85\ntol: 0.0001\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{Quantile: 0.9, Confidence: 0.99, Fraction: 0.95, Assurance: 0.85, Tol: 0.0001}, s)
}

func TestLoadSettings_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml ["), 0644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}
