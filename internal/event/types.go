// internal/event/types.go
package event

import (
	"alien-defense/internal/types"
	"alien-defense/pkg/gridmap"
)

const (
	AlienSpawned      EventType = "AlienSpawned"      // Пришелец появился
	SpawnDropped      EventType = "SpawnDropped"      // Заявка на спавн отброшена: достигнут лимит
	GoalReached       EventType = "GoalReached"       // Пришелец дошёл до цели
	AlienKilled       EventType = "AlienKilled"       // Здоровье пришельца кончилось
	PathExhausted     EventType = "PathExhausted"     // Пришелец исчерпал попытки найти путь к цели
	ObstacleBuilt     EventType = "ObstacleBuilt"     // Игрок построил препятствие
	ObstacleDestroyed EventType = "ObstacleDestroyed" // Препятствие разрушено
	PlayerDamaged     EventType = "PlayerDamaged"     // Пришелец ударил игрока
)

// Notifications — события, которые ядро отдаёт внешним системам
var Notifications = []EventType{
	AlienSpawned, SpawnDropped, GoalReached, AlienKilled,
	PathExhausted, ObstacleBuilt, ObstacleDestroyed, PlayerDamaged,
}

// AlienData — данные событий о пришельце
type AlienData struct {
	Alien types.EntityID `json:"alien"`
	Tile  gridmap.Tile   `json:"tile"`
}

// SpawnData — данные событий о точке спавна
type SpawnData struct {
	SpawnPoint types.EntityID `json:"spawn_point"`
	Tile       gridmap.Tile   `json:"tile"`
}

// ObstacleData — данные событий о препятствии
type ObstacleData struct {
	Obstacle types.EntityID `json:"obstacle"`
	DefID    string         `json:"def_id"`
	Tile     gridmap.Tile   `json:"tile"`
	By       types.EntityID `json:"by,omitempty"` // Кто разрушил
}

// DamageData — данные события об уроне
type DamageData struct {
	Source    types.EntityID `json:"source"`
	Target    types.EntityID `json:"target"`
	Amount    int            `json:"amount"`
	Remaining int            `json:"remaining"`
}
