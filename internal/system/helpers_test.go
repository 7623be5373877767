package system

import (
	"log"
	"os"
	"testing"

	"alien-defense/internal/ai"
	"alien-defense/internal/component"
	"alien-defense/internal/config"
	"alien-defense/internal/defs"
	"alien-defense/internal/entity"
	"alien-defense/internal/event"
	"alien-defense/internal/types"
	"alien-defense/pkg/gridmap"
)

const testDT = 1.0 / config.DecisionTPS

func TestMain(m *testing.M) {
	if err := defs.LoadDefaults(); err != nil {
		log.Fatalf("load definitions: %v", err)
	}
	os.Exit(m.Run())
}

// testWorld — минимальный мир без экрана: граф, ECS и системы ИИ.
type testWorld struct {
	ecs        *entity.ECS
	graph      *gridmap.Graph
	dispatcher *event.Dispatcher
	tuning     config.Tuning
	thinker    *ThinkerSystem
	movement   *MovementSystem
	build      *BuildSystem
	events     []event.Event
}

func newTestWorld(t *testing.T, graph *gridmap.Graph) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:        entity.NewECS(),
		graph:      graph,
		dispatcher: event.NewDispatcher(),
		tuning:     config.DefaultTuning(),
	}
	for _, et := range event.Notifications {
		w.dispatcher.Subscribe(et, event.ListenerFunc(func(e event.Event) {
			w.events = append(w.events, e)
		}))
	}
	w.thinker = NewThinkerSystem(w.ecs, graph, w.dispatcher, w.tuning)
	w.movement = NewMovementSystem(w.ecs, graph)
	w.build = NewBuildSystem(w.ecs, graph, w.dispatcher)
	return w
}

func (w *testWorld) addGoal(tile gridmap.Tile) {
	id := w.ecs.NewEntity()
	w.ecs.Goals[id] = &component.Goal{Tile: tile}
}

func (w *testWorld) addPlayer(x, y float64, health int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Players[id] = &component.Player{Spawn: gridmap.FromWorld(x, y)}
	w.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	return id
}

// addAlien ставит пришельца в центр тайла с заданным курсом. Сенсоры "ничего не видят".
func (w *testWorld) addAlien(tile gridmap.Tile, angle float64, profile []component.BehaviorKind) types.EntityID {
	id := w.ecs.NewEntity()
	x, y := tile.Center()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Orientations[id] = &component.Orientation{Angle: angle}
	w.ecs.Velocities[id] = &component.Velocity{Speed: 1.5}
	w.ecs.Intents[id] = &component.MovementIntent{}
	w.ecs.Healths[id] = &component.Health{Value: 60, Max: 60}
	w.ecs.Combats[id] = &component.Combat{
		Damage:   w.tuning.Alien.AttackDamage,
		FireRate: w.tuning.Alien.AttackRate,
		Range:    w.tuning.Alien.AttackRange,
	}
	w.ecs.Aliens[id] = &component.Alien{DefID: "ALIEN_SEEKER", Tile: tile, SpawnPoint: tile}
	w.ecs.Thinkers[id] = &component.Thinker{Profile: profile}
	ws := component.NewWallSensor(w.tuning.Alien.MaxSensingDistance)
	w.ecs.WallSensors[id] = &ws
	w.ecs.Sights[id] = &component.PlayerSight{}
	return id
}

// step — один тик решений и движения
func (w *testWorld) step() {
	w.thinker.Update(testDT)
	w.movement.Update(testDT)
}

// runUntil гоняет тики, пока cond не станет true. Возвращает число тиков или -1.
func (w *testWorld) runUntil(maxTicks int, cond func() bool) int {
	for i := 1; i <= maxTicks; i++ {
		w.step()
		if cond() {
			return i
		}
	}
	return -1
}

func (w *testWorld) eventsOf(et event.EventType) []event.Event {
	var out []event.Event
	for _, e := range w.events {
		if e.Type == et {
			out = append(out, e)
		}
	}
	return out
}

var seeker = ai.Seeker
