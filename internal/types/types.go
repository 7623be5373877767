package types

// EntityID — идентификатор сущности в ECS. Ноль зарезервирован под "нет сущности".
type EntityID uint64
