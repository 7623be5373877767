// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"alien-defense/internal/app"
	"alien-defense/internal/config"
	"alien-defense/internal/defs"
	"alien-defense/internal/state"
	"alien-defense/internal/transport/ws"
	"alien-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// options — параметры командной строки
type options struct {
	TuningPath   string
	LayoutPath   string
	AliensPath   string
	ObstaclePath string
	ObserveAddr  string
	PprofAddr    string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.StringVar(&o.TuningPath, "config", "", "YAML file with simulation tuning")
	fs.StringVar(&o.LayoutPath, "layout", "", "text map layout (default: built-in)")
	fs.StringVar(&o.AliensPath, "aliens", "", "JSON alien definitions (default: built-in)")
	fs.StringVar(&o.ObstaclePath, "obstacles", "", "JSON obstacle definitions (default: built-in)")
	fs.StringVar(&o.ObserveAddr, "observe", "", "address for the WebSocket notification feed, e.g. localhost:8090")
	fs.StringVar(&o.PprofAddr, "pprof", "", "pprof listen address, e.g. localhost:6060 (disabled by default)")
	err := fs.Parse(args)
	return o, err
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if opts.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(opts.PprofAddr, nil))
		}()
	}

	if err := defs.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load built-in definitions: %v", err)
	}
	if opts.AliensPath != "" {
		if err := defs.LoadAlienDefinitions(opts.AliensPath); err != nil {
			log.Fatalf("Failed to load alien definitions: %v", err)
		}
	}
	if opts.ObstaclePath != "" {
		if err := defs.LoadObstacleDefinitions(opts.ObstaclePath); err != nil {
			log.Fatalf("Failed to load obstacle definitions: %v", err)
		}
	}

	tuning := config.DefaultTuning()
	if opts.TuningPath != "" {
		t, err := config.LoadTuning(opts.TuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning = t
	}

	var feed *ws.Server
	if opts.ObserveAddr != "" {
		feed = ws.NewServer(log.New(os.Stderr, "[observe] ", log.LstdFlags))
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", feed.WSHandler())
		go func() {
			log.Println(http.ListenAndServe(opts.ObserveAddr, mux))
		}()
	}

	newGame := func() (*app.Game, error) {
		layout, err := loadLayout(opts.LayoutPath)
		if err != nil {
			return nil, err
		}
		g, err := app.NewGame(layout, tuning)
		if err != nil {
			return nil, err
		}
		if feed != nil {
			feed.Attach(g.EventDispatcher)
		}
		return g, nil
	}

	sm := state.NewStateMachine()
	gs, err := state.NewGameState(sm, newGame)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	sm.SetState(gs)

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Alien Defense")
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

func loadLayout(path string) (*gridmap.Layout, error) {
	if path == "" {
		return app.DefaultLayout()
	}
	return gridmap.LoadLayout(path)
}
