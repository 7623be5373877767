package system

import (
	"log"

	"alien-defense/internal/ai"
	"alien-defense/internal/component"
	"alien-defense/internal/config"
	"alien-defense/internal/defs"
	"alien-defense/internal/entity"
	"alien-defense/internal/event"
	"alien-defense/internal/types"
	"alien-defense/internal/utils"
	"alien-defense/pkg/gridmap"
)

// SpawnSystem выпускает пришельцев из точек спавна с заданной частотой.
// Заявки сверх лимита популяции отбрасываются, а не копятся.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	tuning          config.Tuning
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, tuning config.Tuning) *SpawnSystem {
	s := &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		tuning:          tuning,
	}
	ecs.Population.Cap = tuning.Spawn.PopulationCap
	eventDispatcher.Subscribe(event.GoalReached, s)
	eventDispatcher.Subscribe(event.AlienKilled, s)
	return s
}

// AddSpawnPoint регистрирует точку спавна. Первая заявка будет через полный интервал.
func (s *SpawnSystem) AddSpawnPoint(tile gridmap.Tile, defID string) types.EntityID {
	if defID == "" {
		defID = s.tuning.Spawn.DefID
	}
	id := s.ecs.NewEntity()
	interval := s.tuning.SpawnInterval()
	s.ecs.SpawnPoints[id] = &component.SpawnPoint{
		Tile:     tile,
		DefID:    defID,
		Cooldown: interval,
		Interval: interval,
	}
	return id
}

func (s *SpawnSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SpawnPointIDs() {
		sp := s.ecs.SpawnPoints[id]
		sp.Cooldown -= deltaTime
		if sp.Cooldown > 0 {
			continue
		}
		sp.Cooldown += sp.Interval
		if sp.Cooldown <= 0 {
			sp.Cooldown = sp.Interval
		}
		s.RequestSpawn(id)
	}
}

// RequestSpawn — одна заявка на спавн из точки. Возвращает ID пришельца, если заявка принята.
func (s *SpawnSystem) RequestSpawn(spawnPointID types.EntityID) (types.EntityID, bool) {
	sp, ok := s.ecs.SpawnPoints[spawnPointID]
	if !ok {
		return 0, false
	}
	pop := s.ecs.Population
	if pop.Live >= pop.Cap {
		pop.Dropped++
		s.eventDispatcher.Dispatch(event.Event{Type: event.SpawnDropped, Data: event.SpawnData{SpawnPoint: spawnPointID, Tile: sp.Tile}})
		return 0, false
	}

	def, ok := defs.AlienLibrary[sp.DefID]
	if !ok {
		log.Printf("SpawnSystem: alien definition %q not found", sp.DefID)
		return 0, false
	}
	profile, ok := ai.ProfileByName(def.Profile)
	if !ok {
		log.Printf("SpawnSystem: unknown profile %q for %s, using seeker", def.Profile, def.ID)
		profile = ai.Seeker
	}

	id := s.ecs.NewEntity()
	x, y := sp.Tile.Center()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Orientations[id] = &component.Orientation{Angle: s.rng.Angle()}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Intents[id] = &component.MovementIntent{}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Combats[id] = &component.Combat{
		Damage:   s.tuning.Alien.AttackDamage,
		FireRate: s.tuning.Alien.AttackRate,
		Range:    s.tuning.Alien.AttackRange,
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: def.Visuals.Color, RadiusFactor: def.Visuals.RadiusFactor}
	s.ecs.Aliens[id] = &component.Alien{DefID: def.ID, Tile: sp.Tile, SpawnPoint: sp.Tile}
	s.ecs.Thinkers[id] = &component.Thinker{Profile: profile}
	// Первый опрос сенсоров разбросан по периоду, чтобы агенты не опрашивались в одном тике.
	s.ecs.Sensings[id] = &component.Sensing{Cooldown: s.rng.Float64() / s.tuning.SensingHz}
	ws := component.NewWallSensor(s.tuning.Alien.MaxSensingDistance)
	s.ecs.WallSensors[id] = &ws
	s.ecs.Sights[id] = &component.PlayerSight{}

	pop.Live++
	pop.Spawned++
	s.eventDispatcher.Dispatch(event.Event{Type: event.AlienSpawned, Data: event.AlienData{Alien: id, Tile: sp.Tile}})
	return id, true
}

func (s *SpawnSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.GoalReached, event.AlienKilled:
		if s.ecs.Population.Live > 0 {
			s.ecs.Population.Live--
		}
	}
}
