// pkg/gridmap/layout.go
package gridmap

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Code — код тайла в текстовой раскладке карты
type Code byte

const (
	CodeFloor       Code = '.'
	CodeWall        Code = '#'
	CodePickup      Code = '*'
	CodeAlienSpawn  Code = 'S'
	CodeAlienGoal   Code = 'G'
	CodePlayerSpawn Code = '@'
)

var (
	ErrEmptyLayout     = errors.New("gridmap: empty layout")
	ErrRaggedLayout    = errors.New("gridmap: rows have different widths")
	ErrUnknownTileCode = errors.New("gridmap: unknown tile code")
	ErrNoSpawn         = errors.New("gridmap: layout has no alien spawn")
	ErrNoGoal          = errors.New("gridmap: layout has no alien goal")
	ErrManyGoals       = errors.New("gridmap: layout has more than one alien goal")
)

// Layout — разобранная раскладка карты
type Layout struct {
	Width       int
	Height      int
	Codes       [][]Code // [y][x]
	Spawns      []Tile
	Goal        Tile
	PlayerSpawn Tile
	HasPlayer   bool
	Pickups     []Tile
}

// ParseLayout разбирает текстовую раскладку. Пустые строки и строки, начинающиеся с ';', пропускаются.
func ParseLayout(src string) (*Layout, error) {
	l := &Layout{}
	goals := 0
	scanner := bufio.NewScanner(strings.NewReader(src))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if l.Width == 0 {
			l.Width = len(line)
		} else if len(line) != l.Width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedLayout, l.Height, len(line), l.Width)
		}

		y := l.Height
		row := make([]Code, len(line))
		for x := 0; x < len(line); x++ {
			code := Code(line[x])
			tile := Tile{X: x, Y: y}
			switch code {
			case CodeFloor, CodeWall:
			case CodePickup:
				l.Pickups = append(l.Pickups, tile)
			case CodeAlienSpawn:
				l.Spawns = append(l.Spawns, tile)
			case CodeAlienGoal:
				l.Goal = tile
				goals++
			case CodePlayerSpawn:
				l.PlayerSpawn = tile
				l.HasPlayer = true
			default:
				return nil, fmt.Errorf("%w %q at %s", ErrUnknownTileCode, line[x], tile)
			}
			row[x] = code
		}
		l.Codes = append(l.Codes, row)
		l.Height++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	switch {
	case l.Height == 0:
		return nil, ErrEmptyLayout
	case len(l.Spawns) == 0:
		return nil, ErrNoSpawn
	case goals == 0:
		return nil, ErrNoGoal
	case goals > 1:
		return nil, ErrManyGoals
	}
	return l, nil
}

// LoadLayout читает раскладку из файла.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	l, err := ParseLayout(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Code возвращает код тайла; за пределами карты — стена.
func (l *Layout) Code(t Tile) Code {
	if t.X < 0 || t.Y < 0 || t.Y >= l.Height || t.X >= l.Width {
		return CodeWall
	}
	return l.Codes[t.Y][t.X]
}

// Graph строит граф проходимости: всё, кроме стен, — вершины.
func (l *Layout) Graph(diagonal bool) *Graph {
	g := NewGraph(l.Width, l.Height, diagonal)
	for y, row := range l.Codes {
		for x, code := range row {
			if code != CodeWall {
				g.AddVertex(Tile{X: x, Y: y})
			}
		}
	}
	return g
}
