// internal/system/utils.go
package system

import (
	"alien-defense/internal/entity"
	"alien-defense/internal/event"
	"alien-defense/internal/types"
	"alien-defense/pkg/gridmap"
)

// ApplyDamage наносит урон сущности и возвращает оставшееся здоровье.
// ok == false, если у сущности нет здоровья.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) (remaining int, ok bool) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return 0, false
	}
	if damage < 0 {
		damage = 0
	}
	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
	}
	return health.Value, true
}

// destroyObstacle возвращает тайл препятствия в граф и удаляет сущность.
func destroyObstacle(ecs *entity.ECS, graph *gridmap.Graph, dispatcher *event.Dispatcher, id, by types.EntityID) {
	obstacle, ok := ecs.Obstacles[id]
	if !ok {
		return
	}
	data := event.ObstacleData{Obstacle: id, DefID: obstacle.DefID, Tile: obstacle.Tile, By: by}
	graph.AddVertex(obstacle.Tile)
	ecs.RemoveEntity(id)
	dispatcher.Dispatch(event.Event{Type: event.ObstacleDestroyed, Data: data})
}

// despawnAlien удаляет пришельца, предварительно отправив событие с его последним тайлом.
func despawnAlien(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID, reason event.EventType) {
	alien, ok := ecs.Aliens[id]
	if !ok {
		return
	}
	data := event.AlienData{Alien: id, Tile: alien.Tile}
	ecs.RemoveEntity(id)
	dispatcher.Dispatch(event.Event{Type: reason, Data: data})
}
