package ui

import (
	"math"
	"strings"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/radar"
	"github.com/charmbracelet/lipgloss"
)

// Needle reach, as a fraction of the ring radius: longest on top of the
// treasure, shortest from farFromTreasure steps out.
const (
	nearReach       = 0.9
	farReach        = 0.4
	farFromTreasure = 50
)

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellRing
	cellMark
	cellNeedle
)

// canvas is a character grid where each cell remembers what drew it.
type canvas struct {
	w, h  int
	chars [][]byte
	kinds [][]cellKind
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, chars: make([][]byte, h), kinds: make([][]cellKind, h)}
	for row := range c.chars {
		c.chars[row] = []byte(strings.Repeat(" ", w))
		c.kinds[row] = make([]cellKind, w)
	}
	return c
}

// put draws ch at (col, row) unless it is off the grid, or the cell is
// taken and keep is set.
func (c *canvas) put(col, row int, ch byte, kind cellKind, keep bool) bool {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return false
	}
	if keep && c.kinds[row][col] != cellBlank {
		return false
	}
	c.chars[row][col] = ch
	c.kinds[row][col] = kind
	return true
}

// RenderCompass renders a compass rose on bg with a needle pointing at
// angle (radians, 0=north, clockwise). The needle shortens as steps grows.
func RenderCompass(width, height int, angle float64, steps int, bg lipgloss.Color) string {
	if width < 9 || height < 5 {
		return ""
	}
	c := newCanvas(width, height)

	midX, midY := float64(width)/2, float64(height)/2
	radX := math.Max(midX-2, 3) // columns
	radY := math.Max(midY-2, 2) // rows
	at := func(a, frac float64) (int, int) {
		return int(math.Round(midX + frac*radX*math.Sin(a))),
			int(math.Round(midY - frac*radY*math.Cos(a)))
	}

	const ringPoints = 80
	for i := 0; i < ringPoints; i++ {
		a := 2 * math.Pi * float64(i) / ringPoints
		col, row := at(a, 1)
		c.put(col, row, ringChar(a), cellRing, true)
	}

	cx, cy := at(0, 0)
	offX, offY := int(math.Round(radX))+1, int(math.Round(radY))+1
	for _, m := range []struct {
		dc, dr int
		ch     byte
	}{{0, -offY, 'N'}, {offX, 0, 'E'}, {0, offY, 'S'}, {-offX, 0, 'W'}, {0, 0, 'o'}} {
		c.put(cx+m.dc, cy+m.dr, m.ch, cellMark, false)
	}

	reach := needleReach(steps)
	segments := max(int(math.Max(radX, radY)*reach), 2)
	tipCol, tipRow := cx, cy
	for i := 1; i <= segments; i++ {
		col, row := at(angle, reach*float64(i)/float64(segments))
		if c.put(col, row, shaftChar(angle), cellNeedle, false) {
			tipCol, tipRow = col, row
		}
	}
	c.put(tipCol, tipRow, needleTip(angle), cellNeedle, false)

	return c.render(bg)
}

func needleReach(steps int) float64 {
	far := float64(min(max(steps, 0), farFromTreasure)) / farFromTreasure
	return nearReach - (nearReach-farReach)*far
}

func (c *canvas) render(bg lipgloss.Color) string {
	styles := map[cellKind]lipgloss.Style{
		cellBlank:  lipgloss.NewStyle().Background(bg),
		cellRing:   lipgloss.NewStyle().Foreground(ColorCompassDim).Background(bg),
		cellMark:   lipgloss.NewStyle().Foreground(ColorWhite).Background(bg).Bold(true),
		cellNeedle: lipgloss.NewStyle().Foreground(ColorWhite).Background(bg).Bold(true),
	}

	rows := make([]string, c.h)
	for row := range c.chars {
		var sb strings.Builder
		for col, ch := range c.chars[row] {
			sb.WriteString(styles[c.kinds[row][col]].Render(string(ch)))
		}
		rows[row] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func ringChar(a float64) byte {
	switch radar.Sector(a) {
	case 1, 5:
		return '\\'
	case 2, 6:
		return '|'
	case 3, 7:
		return '/'
	}
	return '-'
}

// shaftChar returns the line character for a given angle direction.
func shaftChar(a float64) byte {
	switch radar.Sector(a) {
	case 2, 6: // E, W
		return '-'
	case 1, 5: // NE, SW
		return '/'
	case 3, 7: // SE, NW
		return '\\'
	}
	return '|'
}

// needleTip returns the arrowhead character for a given angle.
func needleTip(a float64) byte {
	switch radar.Sector(a) {
	case 0:
		return '^'
	case 2:
		return '>'
	case 4:
		return 'v'
	case 6:
		return '<'
	}
	return '*'
}
