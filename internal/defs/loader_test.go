package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	seeker, ok := AlienLibrary["ALIEN_SEEKER"]
	require.True(t, ok)
	assert.Equal(t, "seeker", seeker.Profile)
	assert.Greater(t, seeker.Speed, 0.0)

	wall, ok := ObstacleLibrary["OBSTACLE_WALL"]
	require.True(t, ok)
	assert.Nil(t, wall.Combat)

	tower, ok := ObstacleLibrary["OBSTACLE_TOWER"]
	require.True(t, ok)
	require.NotNil(t, tower.Combat)
	assert.Equal(t, 10, tower.Combat.Damage)
	assert.Equal(t, uint8(255), tower.Visuals.Color.B)
}

func TestParseAlienDefinitions_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"not an array":    `{"id": "X"}`,
		"empty":           `[]`,
		"missing health":  `[{"id": "X", "speed": 1, "profile": "seeker"}]`,
		"zero speed":      `[{"id": "X", "health": 1, "speed": 0, "profile": "seeker"}]`,
		"unknown profile": `[{"id": "X", "health": 1, "speed": 1, "profile": "sleeper"}]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ParseAlienDefinitions([]byte(doc)))
		})
	}
}

func TestParseObstacleDefinitions_TowerNeedsCompleteCombat(t *testing.T) {
	err := ParseObstacleDefinitions([]byte(`[{"id": "T", "health": 5, "combat": {"damage": 3}}]`))
	assert.Error(t, err)

	require.NoError(t, ParseObstacleDefinitions([]byte(`[{"id": "T", "health": 5, "combat": {"damage": 3, "fire_rate": 2, "range": 1.5}}]`)))
	assert.Equal(t, 1.5, ObstacleLibrary["T"].Combat.Range)
}

func TestLoadObstacleDefinitionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obstacles.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "W", "health": 9}]`), 0o644))
	require.NoError(t, LoadObstacleDefinitions(path))
	assert.Equal(t, 9, ObstacleLibrary["W"].Health)

	assert.Error(t, LoadAlienDefinitions(filepath.Join(t.TempDir(), "nope.json")))
}
