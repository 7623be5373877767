// internal/app/game.go
package app

import (
	_ "embed"
	"fmt"
	"log"

	"alien-defense/internal/component"
	"alien-defense/internal/config"
	"alien-defense/internal/entity"
	"alien-defense/internal/event"
	"alien-defense/internal/system"
	"alien-defense/internal/types"
	"alien-defense/internal/utils"
	"alien-defense/pkg/gridmap"
)

//go:embed maps/default.txt
var defaultLayout string

// DefaultLayout возвращает встроенную раскладку карты
func DefaultLayout() (*gridmap.Layout, error) {
	return gridmap.ParseLayout(defaultLayout)
}

// Game holds the simulation: the tile graph, the ECS and the systems that step it.
type Game struct {
	Layout          *gridmap.Layout
	Graph           *gridmap.Graph
	ECS             *entity.ECS
	Tuning          config.Tuning
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Stats           *Stats

	SensingSystem  *system.SensingSystem
	ThinkerSystem  *system.ThinkerSystem
	MovementSystem *system.MovementSystem
	CombatSystem   *system.CombatSystem
	SpawnSystem    *system.SpawnSystem
	BuildSystem    *system.BuildSystem

	PlayerID    types.EntityID
	accumulator float64
}

// NewGame initializes a new game instance from a parsed layout.
func NewGame(layout *gridmap.Layout, tuning config.Tuning) (*Game, error) {
	if layout == nil {
		return nil, fmt.Errorf("layout cannot be nil")
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}

	ecs := entity.NewECS()
	graph := layout.Graph(tuning.DiagonalMovement)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(tuning.Seed)

	g := &Game{
		Layout:          layout,
		Graph:           graph,
		ECS:             ecs,
		Tuning:          tuning,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Stats:           NewStats(eventDispatcher),
	}
	g.SensingSystem = system.NewSensingSystem(ecs, system.NewGridOracle(ecs, graph), tuning)
	g.ThinkerSystem = system.NewThinkerSystem(ecs, graph, eventDispatcher, tuning)
	g.MovementSystem = system.NewMovementSystem(ecs, graph)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.SpawnSystem = system.NewSpawnSystem(ecs, eventDispatcher, rng, tuning)
	g.BuildSystem = system.NewBuildSystem(ecs, graph, eventDispatcher)

	goalID := ecs.NewEntity()
	ecs.Goals[goalID] = &component.Goal{Tile: layout.Goal}
	for _, tile := range layout.Spawns {
		g.SpawnSystem.AddSpawnPoint(tile, tuning.Spawn.DefID)
	}
	if layout.HasPlayer {
		g.createPlayerEntity(layout.PlayerSpawn)
	}

	log.Printf("Game: %dx%d map, %d walkable tiles, %d spawn points, population cap %d",
		layout.Width, layout.Height, graph.Len(), len(layout.Spawns), tuning.Spawn.PopulationCap)
	return g, nil
}

func (g *Game) createPlayerEntity(tile gridmap.Tile) {
	id := g.ECS.NewEntity()
	x, y := tile.Center()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Players[id] = &component.Player{Spawn: tile}
	g.ECS.Healths[id] = &component.Health{Value: g.Tuning.Player.Health, Max: g.Tuning.Player.Health}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.PlayerColor, RadiusFactor: config.PlayerRadiusFactor}
	g.PlayerID = id
}

// Update копит реальное время и прогоняет симуляцию фиксированными шагами 1/DecisionTPS.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	const step = 1.0 / config.DecisionTPS
	g.accumulator += deltaTime
	for g.accumulator >= step {
		g.Step(step)
		g.accumulator -= step
	}
}

// Step — один тик: сенсоры, выбор и исполнение поведений, движение, бой, спавн.
func (g *Game) Step(deltaTime float64) {
	if g.GameOver() {
		return
	}
	g.SensingSystem.Update(deltaTime)
	g.ThinkerSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.ECS.GameTime += deltaTime
	g.Stats.Ticks++
}

// Build ставит препятствие игрока на тайл
func (g *Game) Build(tile gridmap.Tile, defID string) (types.EntityID, error) {
	return g.BuildSystem.Build(tile, defID)
}

// GameOver — игрок был на карте и погиб
func (g *Game) GameOver() bool {
	if g.PlayerID == 0 {
		return false
	}
	health, ok := g.ECS.Healths[g.PlayerID]
	return ok && health.Value <= 0
}
