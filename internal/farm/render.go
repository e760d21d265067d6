package farm

import (
	"fmt"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// Each tile is drawn as a block of cells.
const (
	TileCols = 4
	TileRows = 2
)

// Glyphs used to draw the field.
const (
	GrassChar = '.'
	SoilChar  = '~'
)

// view maps pixel positions onto the screen.
type view struct {
	offX, offY int
	tile       int
}

func (v view) cell(p core.Point) (int, int) {
	return v.offX + p.X*TileCols/v.tile, v.offY + p.Y*TileRows/v.tile
}

// tileRect converts a tile-space box to screen cells.
func (v view) tileRect(x, y, w, h int) core.Rect {
	return core.NewRect(v.offX+x*TileCols, v.offY+y*TileRows, w*TileCols, h*TileRows)
}

// ScreenSize returns the cells needed to draw the field with its frame
// and status line.
func (g *Game) ScreenSize() (int, int) {
	return g.cfg.Screen.Cols*TileCols + 2, g.cfg.Screen.Rows*TileRows + 3
}

// Render draws the whole game onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	needW, needH := g.ScreenSize()
	if dst.Width() < needW || dst.Height() < needH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height())
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2, hint)
		return
	}

	frameX := (dst.Width() - needW) / 2
	frameY := (dst.Height() - needH) / 2
	v := view{offX: frameX + 1, offY: frameY + 1, tile: g.cfg.Tile()}

	dst.DrawBox(core.NewRect(frameX, frameY, needW, needH-1), core.ColorGreen)
	g.drawGround(dst, v)
	for _, e := range g.draws {
		e.Draw(dst, v)
	}

	switch {
	case g.state == StateDialogue && g.active != nil:
		g.drawSubWindow(dst, v, g.active.Kind().String(), g.active.Line(), "Enter / click to continue")
	case g.state == StatePause:
		g.drawSubWindow(dst, v, "", "Game paused", "Press P to resume")
	}
	if g.state == StateInventory {
		g.drawInventory(dst, v)
	}

	g.drawStatus(dst, frameX, frameY+needH-1, needW)
}

func (g *Game) drawGround(dst *core.Screen, v view) {
	cols := g.cfg.Screen.Cols * TileCols
	rows := g.cfg.Screen.Rows * TileRows
	for y := 0; y < rows; y++ {
		for x := (y % 2) * 2; x < cols; x += 4 {
			dst.SetColored(v.offX+x, v.offY+y, GrassChar, core.ColorGreen)
		}
	}
}

// drawSubWindow draws the bottom message window used for dialogue and pause.
func (g *Game) drawSubWindow(dst *core.Screen, v view, title, text, hint string) {
	box := v.tileRect(2, g.cfg.Screen.Rows-6, g.cfg.Screen.Cols-4, 5)
	dst.DrawBox(box, core.ColorBrightWhite)
	if title != "" {
		dst.DrawTextColored(box.X+2, box.Y, " "+title+" ", core.ColorBrightYellow)
	}
	dst.DrawTextColored(box.X+3, box.Y+2, text, core.ColorBrightWhite)
	dst.DrawTextColored(box.X+3, box.Bottom()-2, hint, core.ColorGray)
}

// drawInventory draws the inventory sidebar.
func (g *Game) drawInventory(dst *core.Screen, v view) {
	box := v.tileRect(g.cfg.Screen.Cols-6, 1, 6, 9)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextColored(box.X+3, box.Y+2, "INVENTORY", core.ColorBrightYellow)
	for i, item := range Items() {
		line := fmt.Sprintf("%-13s%5d", item.String()+":", g.inv.Count(item))
		dst.DrawTextColored(box.X+2, box.Y+4+i*2, line, core.ColorWhite)
	}
}

func (g *Game) drawStatus(dst *core.Screen, x, y, w int) {
	left := fmt.Sprintf(" Gold %d  |  %s", g.inv.Count(Gold), g.plotStatus())
	dst.DrawTextColored(x, y, left, core.ColorBrightYellow)
	if g.won {
		dst.DrawTextColored(x+w-16, y, "SILVER TROPHY", core.ColorBrightWhite)
	}
}

func (g *Game) plotStatus() string {
	if !g.plot.Planted() {
		return "Plot: empty"
	}
	return fmt.Sprintf("Plot: %s (%s)", g.plot.Kind(), g.plot.Stage())
}

// Draw draws the player's sprite.
func (p *Player) Draw(dst *core.Screen, v view) {
	x, y := v.cell(p.pos)
	top, bottom := p.sprite()
	dst.DrawTextColored(x, y, top, core.ColorBrightWhite)
	dst.DrawTextColored(x, y+1, bottom, core.ColorCyan)
}

func (p *Player) sprite() (string, string) {
	var top string
	switch p.facing {
	case DirUp:
		top = "(  )"
	case DirLeft:
		top = "(o )"
	case DirRight:
		top = "( o)"
	default:
		top = "(oo)"
	}
	if p.Frame() == 2 {
		return top, "\\||/"
	}
	return top, "/||\\"
}

// Draw draws the NPC's sprite.
func (n *NPC) Draw(dst *core.Screen, v view) {
	x, y := v.cell(n.pos)
	var top, bottom string
	var c core.Color
	switch n.kind {
	case Farmer:
		top, c = "{^^}", core.ColorOrange
		bottom = "/##\\"
		if n.frame == 2 {
			bottom = "|##|"
		}
	default:
		top, c = "[$$]", core.ColorMagenta
		bottom = "/==\\"
		if n.frame == 2 {
			bottom = "|==|"
		}
		if n.near {
			bottom = "\\==/"
		}
	}
	dst.DrawTextColored(x, y, top, c)
	dst.DrawTextColored(x, y+1, bottom, c)
}

// Draw draws the plot and its crop.
func (c *CropPlot) Draw(dst *core.Screen, v view) {
	box := v.tileRect(1, 5, 6, 6)
	dst.FillRect(box, SoilChar, core.ColorBrown)
	glyph, color := c.glyph()
	if glyph == 0 {
		return
	}
	for y := box.Y + 1; y < box.Bottom(); y += 2 {
		for x := box.X + 2; x < box.Right(); x += 4 {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

func (c *CropPlot) glyph() (rune, core.Color) {
	if !c.planted {
		return 0, core.ColorDefault
	}
	if c.stage == StageBaby {
		return ',', core.ColorBrightGreen
	}
	grown := c.stage == StageGrown
	switch c.kind {
	case CropCarrot:
		if grown {
			return 'V', core.ColorOrange
		}
		return 'v', core.ColorGreen
	case CropPotato:
		if grown {
			return 'O', core.ColorBrown
		}
		return 'o', core.ColorGreen
	default:
		if grown {
			return 'Y', core.ColorBrightYellow
		}
		return 'i', core.ColorGreen
	}
}
