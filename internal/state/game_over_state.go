package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог партии; R начинает новую.
type GameOverState struct {
	sm   *StateMachine
	game *GameState
}

func NewGameOverState(sm *StateMachine, game *GameState) *GameOverState {
	return &GameOverState{sm: sm, game: game}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.game.Restart()
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	st := s.game.Game().Stats
	drawBanner(screen, fmt.Sprintf("GAME OVER  survived %.0fs, %d aliens reached the goal  [R] restart",
		s.game.Game().ECS.GameTime, st.ReachedGoal))
}

func (s *GameOverState) Exit() {}
