package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Combat — компонент атаки: у башен по пришельцам, у пришельцев по игроку
type Combat struct {
	Damage       int
	FireRate     float64 // Атак в секунду
	FireCooldown float64 // Оставшееся время до следующей атаки
	Range        float64 // Радиус действия (в тайлах)
}
