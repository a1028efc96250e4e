package viz

import "strings"

// Canvas is a rune grid the live view draws atoms onto.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
}

func NewCanvas(width, height int) *Canvas {
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = make([]rune, width)
	}
	c := &Canvas{width: width, height: height, cells: cells}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

// Set places a rune at grid coordinates; out-of-bounds points are dropped.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.cells {
		sb.WriteString(string(c.cells[y]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
