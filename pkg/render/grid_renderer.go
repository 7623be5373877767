package render

import (
	"image/color"
	"math"

	"alien-defense/internal/entity"
	"alien-defense/internal/types"
	"alien-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type GridRenderer struct {
	layout       *gridmap.Layout
	tileSize     float64
	offsetY      float64
	colors       *MapColors
	entityColors *EntityColors
	fontFace     font.Face
	mapImage     *ebiten.Image // Предрендеренная карта
	ShowPaths    bool
}

// NewGridRenderer готовит рендерер; карта рисуется один раз при создании.
// offsetY — высота полосы HUD над картой.
func NewGridRenderer(layout *gridmap.Layout, tileSize, offsetY float64, colors *MapColors, entityColors *EntityColors) *GridRenderer {
	w := int(float64(layout.Width) * tileSize)
	h := int(float64(layout.Height) * tileSize)
	r := &GridRenderer{
		layout:       layout,
		tileSize:     tileSize,
		offsetY:      offsetY,
		colors:       colors,
		entityColors: entityColors,
		fontFace:     basicfont.Face7x13,
		mapImage:     ebiten.NewImage(w, h),
		ShowPaths:    true,
	}
	r.RenderMapImage()
	return r
}

// FontFace — шрифт, которым рендерер подписывает карту; им же пользуется HUD.
func (r *GridRenderer) FontFace() font.Face {
	return r.fontFace
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *GridRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	ts := float32(r.tileSize)
	for y := 0; y < r.layout.Height; y++ {
		for x := 0; x < r.layout.Width; x++ {
			t := gridmap.Tile{X: x, Y: y}
			px, py := float32(x)*ts, float32(y)*ts
			vector.DrawFilledRect(r.mapImage, px, py, ts, ts, r.tileColor(r.layout.Code(t)), false)
			vector.StrokeRect(r.mapImage, px, py, ts, ts, 1, r.colors.GridLineColor, false)
		}
	}
	for _, t := range r.layout.Pickups {
		cx, cy := t.ToPixel(r.tileSize)
		vector.DrawFilledCircle(r.mapImage, float32(cx), float32(cy), ts*0.15, r.colors.PickupColor, true)
	}
	for _, t := range r.layout.Spawns {
		r.label(r.mapImage, t, "S", 0)
	}
	r.label(r.mapImage, r.layout.Goal, "G", 0)
}

func (r *GridRenderer) tileColor(code gridmap.Code) color.RGBA {
	switch code {
	case gridmap.CodeWall:
		return r.colors.WallColor
	case gridmap.CodeAlienSpawn:
		return DarkenColor(r.colors.SpawnColor)
	case gridmap.CodeAlienGoal:
		return DarkenColor(r.colors.GoalColor)
	}
	return r.colors.FloorColor
}

func (r *GridRenderer) label(target *ebiten.Image, t gridmap.Tile, s string, offsetY float64) {
	cx, cy := t.ToPixel(r.tileSize)
	b := text.BoundString(r.fontFace, s)
	text.Draw(target, s, r.fontFace, int(cx)-b.Dx()/2, int(cy+offsetY)+b.Dy()/2, r.colors.TextLightColor)
}

// Draw рисует карту и все сущности ECS
func (r *GridRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, r.offsetY)
	screen.DrawImage(r.mapImage, op)

	r.drawObstacles(screen, ecs)
	if r.ShowPaths {
		r.drawPaths(screen, ecs)
	}
	r.drawPlayers(screen, ecs)
	r.drawAliens(screen, ecs)
}

func (r *GridRenderer) drawObstacles(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.ObstacleIDs() {
		o := ecs.Obstacles[id]
		rend, ok := ecs.Renderables[id]
		if !ok {
			continue
		}
		cx, cy := r.toScreen(o.Tile.Center())
		half := float32(r.tileSize * rend.RadiusFactor)
		vector.DrawFilledRect(screen, cx-half, cy-half, 2*half, 2*half, rend.Color, false)
		vector.StrokeRect(screen, cx-half, cy-half, 2*half, 2*half, r.colors.StrokeWidth, DarkenColor(rend.Color), false)
		if _, shoots := ecs.Combats[id]; shoots {
			vector.DrawFilledCircle(screen, cx, cy, half/2, DarkenColor(rend.Color), true)
		}
		r.drawHealthBar(screen, ecs, id, cx, cy-half-4, 2*half)
	}
}

func (r *GridRenderer) drawPaths(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.AlienIDs() {
		alien := ecs.Aliens[id]
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		path, clr := alien.Goal.Path, r.entityColors.PathColor
		if alien.MustDestroy != nil && alien.MustDestroy.HasPath {
			path, clr = alien.MustDestroy.Path, r.entityColors.DestroyPathColor
		}
		px, py := r.toScreen(pos.X, pos.Y)
		for _, t := range path {
			nx, ny := r.toScreen(t.Center())
			vector.StrokeLine(screen, px, py, nx, ny, 1, clr, true)
			px, py = nx, ny
		}
	}
}

func (r *GridRenderer) drawPlayers(screen *ebiten.Image, ecs *entity.ECS) {
	for id := range ecs.Players {
		pos, ok := ecs.Positions[id]
		rend, hasRend := ecs.Renderables[id]
		if !ok || !hasRend {
			continue
		}
		cx, cy := r.toScreen(pos.X, pos.Y)
		radius := float32(r.tileSize * rend.RadiusFactor)
		vector.DrawFilledCircle(screen, cx, cy, radius, rend.Color, true)
		r.drawHealthBar(screen, ecs, id, cx, cy-radius-4, 2*radius)
	}
}

func (r *GridRenderer) drawAliens(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.AlienIDs() {
		pos, ok := ecs.Positions[id]
		rend, hasRend := ecs.Renderables[id]
		if !ok || !hasRend {
			continue
		}
		cx, cy := r.toScreen(pos.X, pos.Y)
		radius := float32(r.tileSize * rend.RadiusFactor)
		vector.DrawFilledCircle(screen, cx, cy, radius+r.colors.StrokeWidth, DarkenColor(rend.Color), true)
		vector.DrawFilledCircle(screen, cx, cy, radius, rend.Color, true)
		if orient, ok := ecs.Orientations[id]; ok {
			hx := cx + float32(math.Cos(orient.Angle))*radius*1.5
			hy := cy + float32(math.Sin(orient.Angle))*radius*1.5
			vector.StrokeLine(screen, cx, cy, hx, hy, r.colors.StrokeWidth, r.colors.TextLightColor, true)
		}
		r.drawHealthBar(screen, ecs, id, cx, cy-radius-6, 2*radius)
	}
}

// drawHealthBar рисует полоску здоровья над сущностью, только если она ранена.
func (r *GridRenderer) drawHealthBar(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, cx, top, width float32) {
	health, ok := ecs.Healths[id]
	if !ok || health.Max <= 0 || health.Value >= health.Max {
		return
	}
	frac := float32(health.Value) / float32(health.Max)
	vector.DrawFilledRect(screen, cx-width/2, top, width, 3, r.colors.BackgroundColor, false)
	vector.DrawFilledRect(screen, cx-width/2, top, width*frac, 3, r.entityColors.HealthBarColor, false)
}

func (r *GridRenderer) toScreen(x, y float64) (float32, float32) {
	return float32(x * r.tileSize), float32(y*r.tileSize + r.offsetY)
}

// ScreenToTile переводит координаты курсора в тайл карты.
func (r *GridRenderer) ScreenToTile(x, y int) (gridmap.Tile, bool) {
	if float64(y) < r.offsetY {
		return gridmap.Tile{}, false
	}
	t := gridmap.PixelToTile(float64(x), float64(y)-r.offsetY, r.tileSize)
	if t.X < 0 || t.Y < 0 || t.X >= r.layout.Width || t.Y >= r.layout.Height {
		return gridmap.Tile{}, false
	}
	return t, true
}
