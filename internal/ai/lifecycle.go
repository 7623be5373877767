package ai

import "alien-defense/internal/component"

// Decision — что сделал выбор на этом тике
type Decision int

const (
	Keep    Decision = iota // Продолжаем текущее поведение
	Switch                  // Старое отменено, новое запрошено
	Restart                 // То же поведение запрошено заново после завершения
	Idle                    // Выбирать нечего
)

// Transition решает, что делать с активным поведением, если выбрано picked.
// Отмену незавершённого старого поведения (Cancelled) должен разрешить его исполнитель
// до вызова Request для нового.
func Transition(t *component.Thinker, picked component.BehaviorKind, ok bool) Decision {
	switch {
	case !ok:
		if t.HasActive && !t.State.Done() {
			t.State = component.ActionCancelled
		}
		return Idle
	case !t.HasActive:
		return Switch
	case t.Active != picked:
		if !t.State.Done() {
			t.State = component.ActionCancelled
		}
		return Switch
	case t.State.Done() || t.State == component.ActionInit:
		return Restart
	}
	return Keep
}

// Request делает kind активным поведением в состоянии Requested
func Request(t *component.Thinker, kind component.BehaviorKind) {
	t.Active = kind
	t.HasActive = true
	t.State = component.ActionRequested
}

// Retire снимает активное поведение. Вызывается только для завершённого экземпляра.
func Retire(t *component.Thinker) {
	t.HasActive = false
	t.State = component.ActionInit
}
