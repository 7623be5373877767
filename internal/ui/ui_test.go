package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alien-defense/internal/event"
)

func TestFilledPips(t *testing.T) {
	assert.Equal(t, HealthPips, FilledPips(100, 100))
	assert.Equal(t, HealthPips/2, FilledPips(50, 100))
	assert.Equal(t, 1, FilledPips(1, 100), "alive player shows at least one pip")
	assert.Equal(t, 0, FilledPips(0, 100))
	assert.Equal(t, 0, FilledPips(10, 0))
	assert.Equal(t, HealthPips, FilledPips(150, 100))
}

func TestPopulationIndicator_PulsesOnDroppedSpawn(t *testing.T) {
	i := NewPopulationIndicator(0, 0, 10)
	now := time.Now()
	assert.Equal(t, float32(1), i.Scale(now))

	i.OnEvent(event.Event{Type: event.AlienSpawned})
	assert.True(t, i.LastPulse.IsZero())

	i.OnEvent(event.Event{Type: event.SpawnDropped})
	assert.InDelta(t, 1.3, i.Scale(i.LastPulse), 1e-6)
	assert.InDelta(t, 1.0, i.Scale(i.LastPulse.Add(2*time.Second)), 1e-3)
}
