package component

import "alien-defense/pkg/gridmap"

// SpawnPoint — точка появления пришельцев
type SpawnPoint struct {
	Tile     gridmap.Tile
	DefID    string
	Cooldown float64 // Оставшееся время до следующей заявки на спавн
	Interval float64
}

// Goal — цель, к которой идут пришельцы
type Goal struct {
	Tile gridmap.Tile
}

// Player — маркер игрока
type Player struct {
	Spawn gridmap.Tile
}

// Population — счётчики живых пришельцев. Пишет только SpawnSystem.
type Population struct {
	Live    int
	Cap     int
	Spawned int
	Dropped int
}
