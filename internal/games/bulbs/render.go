package bulbs

import (
	"fmt"

	"github.com/dkotenko/glowmatch/internal/core"
	"github.com/dkotenko/glowmatch/internal/engine"
)

const (
	cellWidth = 3 // Each bulb occupies "[●]" worth of columns
	hudHeight = 3
)

// Bulb glyphs by kind.
const (
	glyphRegular   = '●'
	glyphLineClear = '◆'
	glyphAreaClear = '✦'
	glyphWildcard  = '★'
	glyphBurst     = '✶'
)

// colorFor maps an engine color onto a terminal color.
func colorFor(c engine.Color) core.Color {
	switch c {
	case 1:
		return core.ColorBrightRed
	case 2:
		return core.ColorBrightYellow
	case 3:
		return core.ColorBrightGreen
	case 4:
		return core.ColorBrightCyan
	case 5:
		return core.ColorBrightMagenta
	case 6:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
	}
}

// glyphFor maps a token kind onto its bulb glyph.
func glyphFor(k engine.Kind) rune {
	switch k {
	case engine.KindLineClear:
		return glyphLineClear
	case engine.KindAreaClear:
		return glyphAreaClear
	case engine.KindWildcard:
		return glyphWildcard
	default:
		return glyphRegular
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if !g.engineOK {
		dst.DrawTextCentered(g.screenH/2, "Could not set up the board")
		dst.DrawTextCentered(g.screenH/2+1, "Check the game configuration")
		return
	}

	boardW := g.engCfg.Cols * cellWidth
	boardH := g.engCfg.Rows
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(g.screenH/2, "Window too small")
	dst.DrawTextCentered(g.screenH/2+1, "Please resize terminal")
}

// renderHUD draws score, counters and the mode line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColored(titleX, 0, title, core.ColorBrightWhite)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	var infoStr string
	switch g.mode {
	case ModeMoves:
		infoStr = fmt.Sprintf("Moves left: %d", g.movesLeft)
	case ModeTimed:
		secs := (g.ticksLeft + g.tickRate - 1) / g.tickRate
		infoStr = fmt.Sprintf("Time: %d:%02d", secs/60, secs%60)
	default:
		infoStr = fmt.Sprintf("Shuffles: %d/%d", g.rules.Reshuffles-g.reshufflesUsed, g.rules.Reshuffles)
	}
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	chainStr := fmt.Sprintf("Best chain: x%d", g.maxChain)
	if g.maxChain == 0 {
		chainStr = "Best chain: -"
	}
	dst.DrawText(boardX, 2, chainStr)
}

// renderBoard draws the bulb grid with cursor, selection, hint and
// playback effects.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	snap := g.eng.Snapshot()
	frame, phase := g.anim.current()

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			c := engine.RC(row, col)
			tok := snap.At(row, col)
			px := boardX + col*cellWidth
			py := boardY + row

			glyph := glyphFor(tok.Kind)
			color := colorFor(tok.Color)
			if tok.Empty() {
				glyph, color = ' ', core.ColorDefault
			}

			// Playback effects draw over the settled board.
			if frame != nil {
				switch phase {
				case phaseBurst:
					if containsCoord(frame.cleared, c) {
						if g.anim.flashOn() {
							glyph, color = glyphBurst, core.ColorBrightWhite
						} else {
							glyph, color = ' ', core.ColorDefault
						}
					}
				case phaseDrop:
					if containsCoord(frame.spawned, c) {
						color = core.ColorWhite
					}
				}
			}

			dst.SetColored(px+1, py, glyph, color)

			// Cursor and selection brackets sit either side of the bulb.
			switch {
			case g.hasSelected && c == g.selected:
				dst.SetColored(px, py, '(', core.ColorBrightYellow)
				dst.SetColored(px+2, py, ')', core.ColorBrightYellow)
			case c == g.cursor:
				dst.SetColored(px, py, '[', core.ColorBrightWhite)
				dst.SetColored(px+2, py, ']', core.ColorBrightWhite)
			case g.hintTicks > 0 && (c == g.hintA || c == g.hintB):
				dst.SetColored(px, py, '<', core.ColorGray)
				dst.SetColored(px+2, py, '>', core.ColorGray)
			}
		}
	}
}

// renderOverlays draws pause and game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		var reason string
		switch g.mode {
		case ModeMoves:
			reason = "Out of moves"
		case ModeTimed:
			reason = "Time is up"
		default:
			reason = "No moves left on the board"
		}
		scoreStr := fmt.Sprintf("Final score: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", reason, scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Select/Swap | H: Hint | F: Shuffle | P: Pause | Q: Quit"
}

func containsCoord(cs []engine.Coord, c engine.Coord) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
