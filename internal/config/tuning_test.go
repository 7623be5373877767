package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	tun := DefaultTuning()
	require.NoError(t, tun.Validate())
	assert.InDelta(t, 5.0, tun.SpawnInterval(), 1e-9)
}

func TestParseTuning_KeepsDefaultsForMissingFields(t *testing.T) {
	tun, err := ParseTuning([]byte(`
seed: 7
spawn:
  population_cap: 3
steering:
  goal_arrival_radius: 0.3
`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), tun.Seed)
	assert.Equal(t, 3, tun.Spawn.PopulationCap)
	assert.Equal(t, 12.0, tun.Spawn.RatePerMinute)
	assert.Equal(t, 0.3, tun.Steering.GoalArrivalRadius)
	assert.Equal(t, 0.5, tun.Steering.DestroyArrivalRadius)
}

func TestParseTuning_RejectsInvalid(t *testing.T) {
	_, err := ParseTuning([]byte("spawn:\n  rate_per_minute: 0\ndestroy:\n  path_attempts: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_per_minute")
	assert.Contains(t, err.Error(), "path_attempts")

	_, err = ParseTuning([]byte("alien:\n  sight_range: 0\n  attack_rate: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sight_range")
	assert.Contains(t, err.Error(), "attack_rate")

	_, err = ParseTuning([]byte("spawn: [1, 2"))
	assert.Error(t, err)
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sensing_hz: 4\n"), 0o644))

	tun, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, tun.SensingHz)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
