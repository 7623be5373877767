package app

import "alien-defense/internal/event"

// Stats — счётчики партии, собираемые из событий
type Stats struct {
	Ticks              int `json:"ticks"`
	Spawned            int `json:"spawned"`
	Dropped            int `json:"dropped"`
	ReachedGoal        int `json:"reached_goal"`
	Killed             int `json:"killed"`
	PathExhausted      int `json:"path_exhausted"`
	ObstaclesBuilt     int `json:"obstacles_built"`
	ObstaclesDestroyed int `json:"obstacles_destroyed"`
	PlayerDamage       int `json:"player_damage"`
}

func NewStats(d *event.Dispatcher) *Stats {
	s := &Stats{}
	for _, t := range event.Notifications {
		d.Subscribe(t, s)
	}
	return s
}

func (s *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.AlienSpawned:
		s.Spawned++
	case event.SpawnDropped:
		s.Dropped++
	case event.GoalReached:
		s.ReachedGoal++
	case event.AlienKilled:
		s.Killed++
	case event.PathExhausted:
		s.PathExhausted++
	case event.ObstacleBuilt:
		s.ObstaclesBuilt++
	case event.ObstacleDestroyed:
		s.ObstaclesDestroyed++
	case event.PlayerDamaged:
		if d, ok := e.Data.(event.DamageData); ok {
			s.PlayerDamage += d.Amount
		}
	}
}
