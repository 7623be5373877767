package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alien-defense/internal/component"
)

func TestPick_HighestWins(t *testing.T) {
	var scores [component.BehaviorCount]float64
	scores[component.BehaviorAvoidWalls] = 0.9
	scores[component.BehaviorMoveForward] = 0.9
	scores[component.BehaviorDestroyTheMap] = 1.0

	profile := []component.BehaviorKind{
		component.BehaviorAvoidWalls, component.BehaviorMoveForward, component.BehaviorDestroyTheMap,
	}
	kind, ok := Pick(profile, scores)
	assert.True(t, ok)
	assert.Equal(t, component.BehaviorDestroyTheMap, kind)
}

func TestPick_TieGoesToFirstRegistered(t *testing.T) {
	var scores [component.BehaviorCount]float64
	scores[component.BehaviorAvoidWalls] = 0.9
	scores[component.BehaviorMoveForward] = 0.9

	kind, _ := Pick([]component.BehaviorKind{component.BehaviorMoveForward, component.BehaviorAvoidWalls}, scores)
	assert.Equal(t, component.BehaviorMoveForward, kind)
	kind, _ = Pick([]component.BehaviorKind{component.BehaviorAvoidWalls, component.BehaviorMoveForward}, scores)
	assert.Equal(t, component.BehaviorAvoidWalls, kind)
}

func TestPick_NothingScored(t *testing.T) {
	var scores [component.BehaviorCount]float64
	_, ok := Pick(Seeker, scores)
	assert.False(t, ok)
}

func TestPick_SeekerProfile(t *testing.T) {
	var scores [component.BehaviorCount]float64
	ScoreAll(Seeker, Snapshot{ForwardDistance: 1, MaxSensingDistance: 5, GoalExists: true}, &scores)
	kind, _ := Pick(Seeker, scores)
	assert.Equal(t, component.BehaviorMoveToGoal, kind, "goal seeking wins the tie with wall avoidance")

	ScoreAll(Seeker, Snapshot{GoalExists: true, PlayerSeen: true, MaxSensingDistance: 5, ForwardDistance: 5}, &scores)
	kind, _ = Pick(Seeker, scores)
	assert.Equal(t, component.BehaviorApproachPlayer, kind)

	ScoreAll(Seeker, Snapshot{GoalExists: true, PlayerSeen: true, MustDestroyTheMap: true}, &scores)
	kind, _ = Pick(Seeker, scores)
	assert.Equal(t, component.BehaviorDestroyTheMap, kind)
}

func TestProfileByName(t *testing.T) {
	p, ok := ProfileByName("seeker")
	assert.True(t, ok)
	assert.Equal(t, Seeker, p)
	_, ok = ProfileByName("sleeper")
	assert.False(t, ok)
}
