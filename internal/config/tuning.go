// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning — параметры симуляции, которые можно переопределить YAML-файлом.
// Расстояния в тайлах, углы в градусах, время в секундах.
type Tuning struct {
	Seed             int64   `yaml:"seed"`
	DiagonalMovement bool    `yaml:"diagonal_movement"`
	SensingHz        float64 `yaml:"sensing_hz"`

	Spawn    SpawnTuning    `yaml:"spawn"`
	Alien    AlienTuning    `yaml:"alien"`
	Steering SteeringTuning `yaml:"steering"`
	Destroy  DestroyTuning  `yaml:"destroy"`
	Player   PlayerTuning   `yaml:"player"`
}

type SpawnTuning struct {
	RatePerMinute float64 `yaml:"rate_per_minute"`
	PopulationCap int     `yaml:"population_cap"`
	DefID         string  `yaml:"def_id"`
}

type AlienTuning struct {
	MaxTurnRate        float64 `yaml:"max_turn_rate"`
	MaxSensingDistance float64 `yaml:"max_sensing_distance"`
	SightRange         float64 `yaml:"sight_range"`
	SightHalfAngle     float64 `yaml:"sight_half_angle"`
	AttackRange        float64 `yaml:"attack_range"`
	AttackDamage       int     `yaml:"attack_damage"`
	AttackRate         float64 `yaml:"attack_rate"`
}

type SteeringTuning struct {
	GoalArrivalRadius    float64 `yaml:"goal_arrival_radius"`
	DestroyArrivalRadius float64 `yaml:"destroy_arrival_radius"`
	ForwardCone          float64 `yaml:"forward_cone"`
}

type DestroyTuning struct {
	PathAttempts int     `yaml:"path_attempts"`
	Damage       int     `yaml:"damage"`
	AttackRate   float64 `yaml:"attack_rate"`
}

type PlayerTuning struct {
	Health int `yaml:"health"`
}

// DefaultTuning возвращает значения по умолчанию
func DefaultTuning() Tuning {
	return Tuning{
		SensingHz: 10,
		Spawn: SpawnTuning{
			RatePerMinute: 12,
			PopulationCap: 8,
			DefID:         "ALIEN_SEEKER",
		},
		Alien: AlienTuning{
			MaxTurnRate:        540,
			MaxSensingDistance: 5,
			SightRange:         4,
			SightHalfAngle:     30,
			AttackRange:        0.9,
			AttackDamage:       5,
			AttackRate:         1,
		},
		Steering: SteeringTuning{
			GoalArrivalRadius:    0.25,
			DestroyArrivalRadius: 0.5,
			ForwardCone:          15,
		},
		Destroy: DestroyTuning{
			PathAttempts: 3,
			Damage:       10,
			AttackRate:   2,
		},
		Player: PlayerTuning{
			Health: 100,
		},
	}
}

// Validate отклоняет значения, при которых симуляция не имеет смысла.
func (t Tuning) Validate() error {
	var errs []error
	if t.SensingHz <= 0 {
		errs = append(errs, errors.New("sensing_hz must be positive"))
	}
	if t.Spawn.RatePerMinute <= 0 {
		errs = append(errs, errors.New("spawn.rate_per_minute must be positive"))
	}
	if t.Spawn.PopulationCap < 0 {
		errs = append(errs, errors.New("spawn.population_cap must not be negative"))
	}
	if t.Alien.MaxTurnRate <= 0 {
		errs = append(errs, errors.New("alien.max_turn_rate must be positive"))
	}
	if t.Alien.MaxSensingDistance <= 0 {
		errs = append(errs, errors.New("alien.max_sensing_distance must be positive"))
	}
	if t.Alien.SightRange <= 0 {
		errs = append(errs, errors.New("alien.sight_range must be positive"))
	}
	if t.Alien.AttackRate <= 0 {
		errs = append(errs, errors.New("alien.attack_rate must be positive"))
	}
	if t.Steering.GoalArrivalRadius <= 0 || t.Steering.DestroyArrivalRadius <= 0 {
		errs = append(errs, errors.New("steering arrival radii must be positive"))
	}
	if t.Destroy.PathAttempts < 1 {
		errs = append(errs, errors.New("destroy.path_attempts must be at least 1"))
	}
	if t.Destroy.Damage <= 0 || t.Destroy.AttackRate <= 0 {
		errs = append(errs, errors.New("destroy.damage and destroy.attack_rate must be positive"))
	}
	return errors.Join(errs...)
}

// SpawnInterval — время между попытками спавна одной точки
func (t Tuning) SpawnInterval() float64 {
	return 60 / t.Spawn.RatePerMinute
}

// LoadTuning читает YAML поверх значений по умолчанию: отсутствующие поля сохраняют дефолт.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(raw)
}

func ParseTuning(raw []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}
