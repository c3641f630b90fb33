package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

func track(format string, i int) string {
	return fmt.Sprintf(format, i)
}

// Terminal cells have no fractional opacity, so alpha becomes a color ramp
// toward the foreground, and sub-cell offsets round to whole rows. Four
// design units map to one terminal row.
const unitsPerRow = 4.0

func (a *App) draw() {
	a.screen.Clear()

	snap := a.ctrl.Frame()

	a.drawWordmark(snap["primary.opacity"])
	if snap["panel.opacity"] > 0 {
		a.drawPanel(snap)
	}
	a.drawHint()

	a.screen.Show()
}

// drawWordmark paints the reveal row, dimmed by the primary view's own
// opacity while the disclosure transition plays over it.
func (a *App) drawWordmark(primaryOpacity float64) {
	frame := a.wmFrame
	if len(frame.Chars) == 0 {
		return
	}

	row := a.height / 3
	col := (a.width - len(frame.Chars)) / 2
	if col < 0 {
		col = 0
	}

	for i, ch := range frame.Chars {
		opacity := ch.Opacity * primaryOpacity
		if opacity <= 0 {
			continue
		}
		y := row + int(math.Round(ch.Offset/unitsPerRow))
		a.setCell(col+i, y, ch.Rune, fade(opacity).Bold(true))
	}

	if frame.Caret.Visible && primaryOpacity > 0 {
		caretCol := col
		if frame.Caret.Position >= 0 {
			caretCol = col + frame.Caret.Position + 1
		}
		a.setCell(caretCol, row, '▌', fade(primaryOpacity))
	}
}

// drawPanel paints the expanded panel box and its staggered items. Backdrop
// blur has no terminal equivalent; the blur track instead drives the density
// of the panel's shade fill.
func (a *App) drawPanel(snap map[string]float64) {
	items := a.ctrl.Items()

	boxW := a.width * 2 / 3
	boxH := len(items)*2 + 3
	left := (a.width - boxW) / 2
	top := (a.height - boxH) / 2

	shade := shadeRune(snap["panel.blur"])
	fill := fade(snap["panel.opacity"] * 0.35)
	for y := top; y < top+boxH; y++ {
		for x := left; x < left+boxW; x++ {
			a.setCell(x, y, shade, fill)
		}
	}

	for i, label := range items {
		opacity := snap[track("item%d.opacity", i)]
		if opacity <= 0 {
			continue
		}
		offset := snap[track("item%d.offset", i)]
		y := top + 2 + i*2 + int(math.Round(offset/unitsPerRow))
		x := left + (boxW-len(label))/2
		style := fade(opacity * snap["panel.opacity"])
		for j, r := range label {
			a.setCell(x+j, y, r, style)
		}
	}
}

func (a *App) drawHint() {
	opacity := a.ctrl.Hint().Opacity()
	if opacity <= 0 {
		return
	}
	const hint = "tap anywhere"
	x := (a.width - len(hint)) / 2
	y := a.height - 2
	style := fade(opacity * 0.6)
	for j, r := range hint {
		a.setCell(x+j, y, r, style)
	}
}

func (a *App) setCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= a.width || y < 0 || y >= a.height {
		return
	}
	a.screen.SetContent(x, y, r, nil, style)
}

// fade maps opacity onto a gray ramp toward white.
func fade(opacity float64) tcell.Style {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	v := int32(math.Round(opacity * 255))
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v, v))
}

// shadeRune picks a denser shade block as blur grows.
func shadeRune(blur float64) rune {
	switch {
	case blur > 13:
		return '▓'
	case blur > 6:
		return '▒'
	case blur > 0:
		return '░'
	default:
		return ' '
	}
}
