// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"log"
	"time"

	"alien-defense/internal/app"
	"alien-defense/internal/config"
	"alien-defense/internal/event"
	"alien-defense/internal/system"
	"alien-defense/internal/ui"
	"alien-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// buildOptions — что можно строить и на какой клавише
var buildOptions = []struct {
	key   ebiten.Key
	defID string
}{
	{ebiten.Key1, "OBSTACLE_WALL"},
	{ebiten.Key2, "OBSTACLE_TOWER"},
}

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.GridRenderer
	health        *ui.PlayerHealthIndicator
	population    *ui.PopulationIndicator
	newGame       func() (*app.Game, error)
	selected      string
	message       string
	lastClickTime time.Time
}

// NewGameState создаёт игру через newGame; та же функция используется для перезапуска.
func NewGameState(sm *StateMachine, newGame func() (*app.Game, error)) (*GameState, error) {
	gameLogic, err := newGame()
	if err != nil {
		return nil, err
	}

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		FloorColor:      config.FloorColor,
		WallColor:       config.WallColor,
		PickupColor:     config.PickupColor,
		SpawnColor:      config.SpawnColor,
		GoalColor:       config.GoalColor,
		GridLineColor:   config.GridLineColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	entityColors := &render.EntityColors{
		PathColor:        config.PathColor,
		DestroyPathColor: config.DestroyPathColor,
		HealthBarColor:   config.HealthBarColor,
	}
	renderer := render.NewGridRenderer(gameLogic.Layout, config.TileSize, config.HUDHeight, mapColors, entityColors)

	population := ui.NewPopulationIndicator(config.ScreenWidth-24, config.HUDHeight/2, 16)
	gameLogic.EventDispatcher.Subscribe(event.SpawnDropped, population)

	return &GameState{
		sm:            sm,
		game:          gameLogic,
		renderer:      renderer,
		health:        ui.NewPlayerHealthIndicator(config.ScreenWidth-170, 8),
		population:    population,
		newGame:       newGame,
		selected:      buildOptions[0].defID,
		lastClickTime: time.Now(),
	}, nil
}

// Game возвращает симуляцию, которую ведёт состояние
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.renderer.ShowPaths = !g.renderer.ShowPaths
	}
	for _, opt := range buildOptions {
		if inpututil.IsKeyJustPressed(opt.key) {
			g.selected = opt.defID
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(g.lastClickTime) >= config.ClickDebounceTime*time.Millisecond {
		g.handleGameClick(ebiten.CursorPosition())
		g.lastClickTime = time.Now()
	}

	g.game.Update(deltaTime)

	if g.game.GameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) handleGameClick(x, y int) {
	tile, ok := g.renderer.ScreenToTile(x, y)
	if !ok {
		return
	}
	if _, err := g.game.Build(tile, g.selected); err != nil {
		switch {
		case errors.Is(err, system.ErrTileBlocked), errors.Is(err, system.ErrTileReserved), errors.Is(err, system.ErrTileOccupied):
			g.message = err.Error()
		default:
			log.Printf("GameState: build failed: %v", err)
			g.message = "build failed"
		}
		return
	}
	g.message = ""
}

// Restart начинает новую партию с теми же параметрами
func (g *GameState) Restart() {
	next, err := NewGameState(g.sm, g.newGame)
	if err != nil {
		log.Printf("GameState: restart failed: %v", err)
		return
	}
	g.sm.SetState(next)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.game.ECS)
	g.drawHUD(screen)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	s := g.game.Stats
	pop := g.game.ECS.Population
	playerHP := 0
	if h, ok := g.game.ECS.Healths[g.game.PlayerID]; ok {
		playerHP = h.Value
		g.health.Draw(screen, h.Value, h.Max)
	}
	g.population.Draw(screen, pop.Live, pop.Cap)
	line1 := fmt.Sprintf("t=%5.1fs  aliens %d/%d  spawned %d  dropped %d  reached %d  killed %d  HP %d",
		g.game.ECS.GameTime, pop.Live, pop.Cap, s.Spawned, s.Dropped, s.ReachedGoal, s.Killed, playerHP)
	line2 := fmt.Sprintf("[1] wall [2] tower: %s   built %d  destroyed %d   [Tab] paths  [P] pause  %s",
		g.selected, s.ObstaclesBuilt, s.ObstaclesDestroyed, g.message)
	face := g.renderer.FontFace()
	text.Draw(screen, line1, face, 8, 18, config.TextLightColor)
	text.Draw(screen, line2, face, 8, 38, config.TextLightColor)
}

func (g *GameState) Exit() {}
