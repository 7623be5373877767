package component

import "alien-defense/pkg/gridmap"

// Alien — запись агента. Данные поведений хранятся здесь же, а не отдельными сущностями.
type Alien struct {
	DefID      string
	Tile       gridmap.Tile // Пересчитывается из Position каждый тик
	SpawnPoint gridmap.Tile

	Goal MoveToGoal
	// MustDestroy присутствует только пока агент обязан ломать препятствия
	MustDestroy *MustDestroyTheMap
}
